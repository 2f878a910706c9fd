package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/domain"
	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/invoicing"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
	"github.com/jhoicas/aska-invoice/pkg/logger"
)

// InvoiceUseCase crea, consulta, modifica y elimina facturas.
// Los totales se calculan aquí, una sola vez, cada vez que cambian líneas o porcentajes.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	settings  repository.SettingsRepository
	numbering *InvoiceNumbering
	newID     func() string
	log       *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	settings repository.SettingsRepository,
	numbering *InvoiceNumbering,
	log *logger.Logger,
) *InvoiceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{
		invoices:  invoices,
		customers: customers,
		settings:  settings,
		numbering: numbering,
		newID:     uuid.NewString,
		log:       log.Component("invoices"),
	}
}

// Create valida el request, calcula totales, asigna el consecutivo y guarda la factura.
//
// Orden: validación → cliente → totales → consecutivo → guardado. Si el guardado falla
// el consecutivo ya quedó consumido (hueco en la numeración) y se registra en el log.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	customer, err := uc.customers.Get(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("factura: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: el cliente %s no existe", domain.ErrInvalidInput, in.CustomerID)
	}

	taxPercent, err := uc.resolveTax(ctx, in.TaxPercent)
	if err != nil {
		return nil, err
	}

	typ := entity.InvoiceType(in.Type)
	items := uc.buildItems(in.Items)
	inv := entity.Invoice{
		Type:            typ,
		CustomerID:      customer.ID,
		IssueDate:       in.IssueDate,
		DueDate:         dueDateFor(typ, in.DueDate),
		Items:           items,
		TaxPercent:      taxPercent,
		DiscountPercent: in.DiscountPercent,
		Totals:          invoicing.ComputeTotals(items, taxPercent, in.DiscountPercent),
		Notes:           in.Notes,
	}

	inv.Number, err = uc.numbering.Next(ctx)
	if err != nil {
		return nil, err
	}

	created, err := uc.invoices.Create(ctx, inv)
	if err != nil {
		uc.log.Warn().Err(err).Str("number", inv.Number).Msg("consecutivo asignado sin factura guardada")
		return nil, fmt.Errorf("factura: guardar: %w", err)
	}
	uc.log.Info().Str("id", created.ID).Str("number", created.Number).Str("total", created.Total.String()).Msg("factura creada")
	return dto.NewInvoiceResponse(created, customer), nil
}

// Preview calcula los totales de un borrador sin persistir nada ni consumir consecutivo.
func (uc *InvoiceUseCase) Preview(ctx context.Context, in dto.PreviewTotalsRequest) (*dto.TotalsResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	taxPercent, err := uc.resolveTax(ctx, in.TaxPercent)
	if err != nil {
		return nil, err
	}
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.InvoiceItem{LineTotal: invoicing.LineTotal(it.Qty, it.UnitPrice)})
	}
	resp := dto.NewTotalsResponse(invoicing.ComputeTotals(items, taxPercent, in.DiscountPercent))
	return &resp, nil
}

// NextNumber devuelve el consecutivo que recibirá la próxima factura (sin consumirlo).
func (uc *InvoiceUseCase) NextNumber(ctx context.Context) (*dto.NextNumberResponse, error) {
	number, err := uc.numbering.Peek(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.NextNumberResponse{Number: number}, nil
}

// Get devuelve la factura con el nombre del cliente (o la etiqueta de cliente eliminado).
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, customer, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv, customer), nil
}

// List lista facturas filtradas por texto y tipo, más reciente primero.
func (uc *InvoiceUseCase) List(ctx context.Context, filter dto.InvoiceFilter) ([]dto.InvoiceSummary, error) {
	typ, err := parseTypeFilter(filter.Type)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	names := customerNames(customers)

	filtered := filterInvoices(invoices, names, filter.Query, typ)
	out := make([]dto.InvoiceSummary, 0, len(filtered))
	for i := range filtered {
		out = append(out, dto.NewInvoiceSummary(&filtered[i], customerNameOf(names, filtered[i].CustomerID)))
	}
	return out, nil
}

// Update modifica la factura. Si cambian líneas o porcentajes los totales se recalculan;
// el número y la fecha de creación no cambian nunca.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	current, err := uc.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	patch := entity.InvoicePatch{
		CustomerID:      in.CustomerID,
		IssueDate:       in.IssueDate,
		DueDate:         in.DueDate,
		TaxPercent:      in.TaxPercent,
		DiscountPercent: in.DiscountPercent,
		Notes:           in.Notes,
	}
	if in.CustomerID != nil && *in.CustomerID != current.CustomerID {
		c, err := uc.customers.Get(ctx, *in.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("factura: obtener cliente: %w", err)
		}
		if c == nil {
			return nil, fmt.Errorf("%w: el cliente %s no existe", domain.ErrInvalidInput, *in.CustomerID)
		}
	}

	typ := current.Type
	if in.Type != nil {
		typ = entity.InvoiceType(*in.Type)
		patch.Type = &typ
	}
	if typ != entity.InvoiceTypeCredit && (current.DueDate != "" || in.DueDate != nil) {
		empty := ""
		patch.DueDate = &empty
	}

	if in.Items != nil || in.TaxPercent != nil || in.DiscountPercent != nil {
		items := current.Items
		if in.Items != nil {
			items = uc.buildItems(in.Items)
			patch.Items = items
		}
		tax := current.TaxPercent
		if in.TaxPercent != nil {
			tax = *in.TaxPercent
		}
		discount := current.DiscountPercent
		if in.DiscountPercent != nil {
			discount = *in.DiscountPercent
		}
		totals := invoicing.ComputeTotals(items, tax, discount)
		patch.Totals = &totals
	}

	updated, err := uc.invoices.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.Get(ctx, updated.CustomerID)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(updated, customer), nil
}

// Delete elimina la factura. El consecutivo no se libera.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.invoices.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// load devuelve la factura y su cliente; customer es nil si el cliente fue eliminado.
func (uc *InvoiceUseCase) load(ctx context.Context, id string) (*entity.Invoice, *entity.Customer, error) {
	return loadInvoice(ctx, uc.invoices, uc.customers, id)
}

func loadInvoice(ctx context.Context, invoices repository.InvoiceRepository, customers repository.CustomerRepository, id string) (*entity.Invoice, *entity.Customer, error) {
	inv, err := invoices.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("factura: obtener: %w", err)
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	customer, err := customers.Get(ctx, inv.CustomerID)
	if err != nil {
		return nil, nil, fmt.Errorf("factura: obtener cliente: %w", err)
	}
	return inv, customer, nil
}

// resolveTax usa el porcentaje pedido o, si no viene, el IVA por defecto de la configuración.
func (uc *InvoiceUseCase) resolveTax(ctx context.Context, requested *decimal.Decimal) (decimal.Decimal, error) {
	if requested != nil {
		return *requested, nil
	}
	s, err := uc.settings.Get(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("factura: leer configuración: %w", err)
	}
	return s.DefaultTaxPercent, nil
}

func (uc *InvoiceUseCase) buildItems(in []dto.InvoiceItemRequest) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.InvoiceItem{
			ID:            uc.newID(),
			DescriptionAr: it.DescriptionAr,
			DescriptionEn: it.DescriptionEn,
			Qty:           it.Qty,
			UnitPrice:     it.UnitPrice,
			LineTotal:     invoicing.LineTotal(it.Qty, it.UnitPrice),
			Notes:         it.Notes,
		})
	}
	return items
}

// dueDateFor la fecha de vencimiento solo aplica a facturas a crédito.
func dueDateFor(typ entity.InvoiceType, dueDate string) string {
	if typ != entity.InvoiceTypeCredit {
		return ""
	}
	return dueDate
}

func parseTypeFilter(s string) (entity.InvoiceType, error) {
	if s == "" || s == "all" {
		return "", nil
	}
	typ := entity.InvoiceType(s)
	if !typ.Valid() {
		return "", fmt.Errorf("%w: tipo de factura desconocido %q", domain.ErrInvalidInput, s)
	}
	return typ, nil
}

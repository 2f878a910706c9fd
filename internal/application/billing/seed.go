package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/invoicing"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
	"github.com/jhoicas/aska-invoice/pkg/logger"
)

// SeedUseCase carga un cliente y una factura de ejemplo cuando no hay datos.
type SeedUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	settings  repository.SettingsRepository
	numbering *InvoiceNumbering
	log       *logger.Logger
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	settings repository.SettingsRepository,
	numbering *InvoiceNumbering,
	log *logger.Logger,
) *SeedUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SeedUseCase{
		customers: customers,
		invoices:  invoices,
		settings:  settings,
		numbering: numbering,
		log:       log.Component("seed"),
	}
}

// Seed devuelve false sin escribir nada si ya existen clientes o facturas.
func (uc *SeedUseCase) Seed(ctx context.Context) (bool, error) {
	customers, err := uc.customers.List(ctx)
	if err != nil {
		return false, err
	}
	invoices, err := uc.invoices.List(ctx)
	if err != nil {
		return false, err
	}
	if len(customers) > 0 || len(invoices) > 0 {
		uc.log.Info().Int("customers", len(customers)).Int("invoices", len(invoices)).Msg("ya hay datos, no se cargan ejemplos")
		return false, nil
	}

	customer, err := uc.customers.Create(ctx, entity.Customer{
		Name:      "شركة المثال",
		Phone:     "777777777",
		Address:   "تعز",
		TaxNumber: "123456789",
		Notes:     "عميل مهم",
	})
	if err != nil {
		return false, fmt.Errorf("seed: cliente: %w", err)
	}

	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: configuración: %w", err)
	}
	number, err := uc.numbering.Next(ctx)
	if err != nil {
		return false, err
	}

	unitPrice := decimal.NewFromInt(50)
	items := []entity.InvoiceItem{{
		ID:            uuid.NewString(),
		DescriptionAr: "دهان داخلي",
		DescriptionEn: "Interior Paint",
		Qty:           3,
		UnitPrice:     unitPrice,
		LineTotal:     invoicing.LineTotal(3, unitPrice),
	}}
	inv, err := uc.invoices.Create(ctx, entity.Invoice{
		Number:          number,
		Type:            entity.InvoiceTypeCash,
		CustomerID:      customer.ID,
		IssueDate:       customer.CreatedAt.Format("2006-01-02"),
		Items:           items,
		TaxPercent:      settings.DefaultTaxPercent,
		DiscountPercent: decimal.Zero,
		Totals:          invoicing.ComputeTotals(items, settings.DefaultTaxPercent, decimal.Zero),
		Notes:           "شكراً لتعاملكم معنا",
	})
	if err != nil {
		return false, fmt.Errorf("seed: factura: %w", err)
	}
	uc.log.Info().Str("customer", customer.ID).Str("invoice", inv.Number).Msg("datos de ejemplo cargados")
	return true, nil
}

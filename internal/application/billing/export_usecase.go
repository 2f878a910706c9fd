package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
)

// ExportUseCase exporta el listado de facturas (mismos filtros que el listado) a Excel.
type ExportUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	exporter     InvoiceExporter
	now          func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	exporter InvoiceExporter,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		exporter:     exporter,
		now:          time.Now,
	}
}

// Export devuelve el archivo y su nombre sugerido (facturas_<fecha>.xlsx).
func (uc *ExportUseCase) Export(ctx context.Context, filter dto.InvoiceFilter) ([]byte, string, error) {
	typ, err := parseTypeFilter(filter.Type)
	if err != nil {
		return nil, "", err
	}
	invoices, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, "", err
	}
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, "", err
	}
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	byID := make(map[string]*entity.Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}

	filtered := filterInvoices(invoices, customerNames(customers), filter.Query, typ)
	docs := make([]InvoiceDocument, 0, len(filtered))
	for i := range filtered {
		docs = append(docs, InvoiceDocument{
			Invoice:  &filtered[i],
			Customer: byID[filtered[i].CustomerID],
			Settings: settings,
		})
	}

	data, err := uc.exporter.ExportInvoices(ctx, docs)
	if err != nil {
		return nil, "", fmt.Errorf("export: %w", err)
	}
	return data, fmt.Sprintf("facturas_%s.xlsx", uc.now().Format("20060102")), nil
}

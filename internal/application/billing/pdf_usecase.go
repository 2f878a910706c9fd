package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/aska-invoice/internal/domain/repository"
)

// PDFUseCase genera la factura imprimible. Solo lee de los stores.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF arma el triple factura + cliente (o etiqueta de eliminado) + configuración
// y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Factura y cliente ──────────────────────────────────────────────────
	inv, customer, err := loadInvoice(ctx, uc.invoiceRepo, uc.customerRepo, invoiceID)
	if err != nil {
		return nil, "", err
	}

	// ── 2. Datos de la empresa ────────────────────────────────────────────────
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener configuración: %w", err)
	}

	// ── 3. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, InvoiceDocument{
		Invoice:  inv,
		Customer: customer,
		Settings: settings,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	return pdfBytes, inv.Number + ".pdf", nil
}

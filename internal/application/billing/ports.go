package billing

import (
	"context"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
)

// InvoiceDocument datos de solo lectura para representar una factura (PDF, Excel).
// Customer es nil cuando el cliente fue eliminado.
type InvoiceDocument struct {
	Invoice  *entity.Invoice
	Customer *entity.Customer
	Settings entity.Settings
}

// CustomerName nombre del cliente o la etiqueta de cliente eliminado.
func (d InvoiceDocument) CustomerName() string {
	if d.Customer == nil {
		return entity.DeletedCustomerLabel
	}
	return d.Customer.Name
}

// InvoicePDFGenerator puerto de salida para generar la representación impresa de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}

// InvoiceExporter puerto de salida para exportar un listado de facturas a hoja de cálculo.
type InvoiceExporter interface {
	ExportInvoices(ctx context.Context, docs []InvoiceDocument) ([]byte, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice (las líneas viajan dentro de la factura).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice entity.Invoice) (*entity.Invoice, error)
	Get(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]entity.Invoice, error)
	Update(ctx context.Context, id string, patch entity.InvoicePatch) (*entity.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Get y Update devuelven (nil, nil) cuando el ID no existe; Delete devuelve false.
type CustomerRepository interface {
	Create(ctx context.Context, customer entity.Customer) (*entity.Customer, error)
	Get(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	Update(ctx context.Context, id string, patch entity.CustomerPatch) (*entity.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

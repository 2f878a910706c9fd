package storage

import (
	"context"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/kv"
	"github.com/jhoicas/aska-invoice/pkg/config"
)

// Nombres de los namespaces (sin prefijo).
const (
	NamespaceCustomers = "customers"
	NamespaceInvoices  = "invoices"
	NamespaceSettings  = "settings"
)

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.InvoiceRepository  = (*InvoiceRepo)(nil)
)

// CustomerRepo colección de clientes.
type CustomerRepo struct {
	*Collection[entity.Customer, *entity.Customer]
}

// NewCustomerRepository construye la colección en el namespace key.
func NewCustomerRepository(backend kv.Backend, key string, opts Options) *CustomerRepo {
	return &CustomerRepo{NewCollection[entity.Customer](backend, key, opts)}
}

func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	return r.All(ctx)
}

func (r *CustomerRepo) Update(ctx context.Context, id string, patch entity.CustomerPatch) (*entity.Customer, error) {
	return r.Collection.Update(ctx, id, patch)
}

// InvoiceRepo colección de facturas (con sus líneas embebidas).
type InvoiceRepo struct {
	*Collection[entity.Invoice, *entity.Invoice]
}

// NewInvoiceRepository construye la colección en el namespace key.
func NewInvoiceRepository(backend kv.Backend, key string, opts Options) *InvoiceRepo {
	return &InvoiceRepo{NewCollection[entity.Invoice](backend, key, opts)}
}

func (r *InvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	return r.All(ctx)
}

func (r *InvoiceRepo) Update(ctx context.Context, id string, patch entity.InvoicePatch) (*entity.Invoice, error) {
	return r.Collection.Update(ctx, id, patch)
}

// Stores agrupa los tres stores sobre un mismo backend.
type Stores struct {
	Customers *CustomerRepo
	Invoices  *InvoiceRepo
	Settings  *SettingsStore
}

// NewStores construye los stores con los namespaces <prefix>.customers, <prefix>.invoices y <prefix>.settings.
func NewStores(backend kv.Backend, cfg config.StorageConfig, opts Options) *Stores {
	opts = opts.withDefaults()
	return &Stores{
		Customers: NewCustomerRepository(backend, cfg.Key(NamespaceCustomers), opts),
		Invoices:  NewInvoiceRepository(backend, cfg.Key(NamespaceInvoices), opts),
		Settings:  NewSettingsStore(backend, cfg.Key(NamespaceSettings), opts.Log),
	}
}

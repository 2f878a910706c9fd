package billing

import (
	"context"
	"sort"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/domain"
	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	customer, err := uc.repo.Create(ctx, entity.Customer{
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		TaxNumber: in.TaxNumber,
		Notes:     in.Notes,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(customer), nil
}

// List lista clientes (más reciente primero) filtrando por nombre, teléfono o dirección.
func (uc *CustomerUseCase) List(ctx context.Context, query string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })

	out := make([]*dto.CustomerResponse, 0, len(list))
	for i := range list {
		c := &list[i]
		if !matchesAny(query, c.Name, c.Phone, c.Address) {
			continue
		}
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Get devuelve el cliente o domain.ErrNotFound.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewCustomerResponse(c), nil
}

// Update aplica los campos presentes en el request.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := uc.repo.Update(ctx, id, in.Patch())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewCustomerResponse(c), nil
}

// Delete elimina el cliente. Sus facturas se conservan y pasan a mostrar el cliente como eliminado.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	TaxNumber string `json:"taxNumber,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Validate recorta espacios y exige name, phone y address no vacíos.
func (r *CreateCustomerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.TaxNumber = strings.TrimSpace(r.TaxNumber)
	r.Notes = strings.TrimSpace(r.Notes)
	return validateStruct(r)
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Campos ausentes no se modifican.
type UpdateCustomerRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	TaxNumber *string `json:"taxNumber,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Validate los campos obligatorios no pueden quedar vacíos si vienen en el body.
func (r *UpdateCustomerRequest) Validate() error {
	for _, p := range []*string{r.Name, r.Phone, r.Address, r.TaxNumber, r.Notes} {
		trimPtr(p)
	}
	for field, p := range map[string]*string{"name": r.Name, "phone": r.Phone, "address": r.Address} {
		if p != nil && *p == "" {
			return invalid("%s no puede quedar vacío", field)
		}
	}
	return nil
}

// Patch convierte el request en el patch tipado de la entidad.
func (r UpdateCustomerRequest) Patch() entity.CustomerPatch {
	return entity.CustomerPatch{
		Name:      r.Name,
		Phone:     r.Phone,
		Address:   r.Address,
		TaxNumber: r.TaxNumber,
		Notes:     r.Notes,
	}
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	TaxNumber string     `json:"taxNumber,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NewCustomerResponse mapea la entidad.
func NewCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		TaxNumber: c.TaxNumber,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

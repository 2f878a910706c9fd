package entity

import "time"

// Customer representa un cliente de la empresa (facturación).
// El ID es inmutable una vez creado; name, phone y address son obligatorios al crear.
type Customer struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	TaxNumber string     `json:"taxNumber,omitempty"` // número de registro fiscal
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"` // nil hasta la primera actualización
}

func (c *Customer) RecordID() string { return c.ID }

func (c *Customer) Stamp(id string, createdAt time.Time) {
	c.ID = id
	c.CreatedAt = createdAt
}

func (c *Customer) Touch(updatedAt time.Time) { c.UpdatedAt = &updatedAt }

// CustomerPatch campos actualizables de un cliente. nil = no modificar.
type CustomerPatch struct {
	Name      *string
	Phone     *string
	Address   *string
	TaxNumber *string
	Notes     *string
}

// Apply copia sobre c solo los campos presentes en el patch.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.TaxNumber != nil {
		c.TaxNumber = *p.TaxNumber
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}

package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
)

// UpdateSettingsRequest body para PUT /api/settings.
// lastInvoiceNumber no es editable por aquí: solo lo avanza la numeración.
type UpdateSettingsRequest struct {
	DefaultTaxPercent *decimal.Decimal `json:"defaultTaxPercent,omitempty"`
	CompanyName       *string          `json:"companyName,omitempty"`
	CompanyAddress    *string          `json:"companyAddress,omitempty"`
	CompanyPhone      *string          `json:"companyPhone,omitempty"`
}

// Validate IVA entre 0 y 100; textos vacíos se guardan como "—".
func (r *UpdateSettingsRequest) Validate() error {
	if r.DefaultTaxPercent != nil {
		if err := validatePercent("defaultTaxPercent", *r.DefaultTaxPercent); err != nil {
			return err
		}
	}
	for _, p := range []*string{r.CompanyName, r.CompanyAddress, r.CompanyPhone} {
		if p != nil {
			*p = strings.TrimSpace(*p)
			if *p == "" {
				*p = "—"
			}
		}
	}
	return nil
}

// Patch convierte el request en el patch tipado.
func (r UpdateSettingsRequest) Patch() entity.SettingsPatch {
	return entity.SettingsPatch{
		DefaultTaxPercent: r.DefaultTaxPercent,
		CompanyName:       r.CompanyName,
		CompanyAddress:    r.CompanyAddress,
		CompanyPhone:      r.CompanyPhone,
	}
}

// SettingsResponse configuración en respuestas.
type SettingsResponse struct {
	LastInvoiceNumber int             `json:"lastInvoiceNumber"`
	DefaultTaxPercent decimal.Decimal `json:"defaultTaxPercent"`
	CompanyName       string          `json:"companyName"`
	CompanyAddress    string          `json:"companyAddress"`
	CompanyPhone      string          `json:"companyPhone"`
}

// NewSettingsResponse mapea la entidad.
func NewSettingsResponse(s entity.Settings) *SettingsResponse {
	return &SettingsResponse{
		LastInvoiceNumber: s.LastInvoiceNumber,
		DefaultTaxPercent: s.DefaultTaxPercent,
		CompanyName:       s.CompanyName,
		CompanyAddress:    s.CompanyAddress,
		CompanyPhone:      s.CompanyPhone,
	}
}

package entity

import "github.com/shopspring/decimal"

// Settings registro único de configuración: perfil de la empresa, IVA por defecto
// y último consecutivo de factura emitido.
type Settings struct {
	LastInvoiceNumber int             `json:"lastInvoiceNumber"` // nunca se reutiliza
	DefaultTaxPercent decimal.Decimal `json:"defaultTaxPercent"`
	CompanyName       string          `json:"companyName"`
	CompanyAddress    string          `json:"companyAddress"`
	CompanyPhone      string          `json:"companyPhone"`
}

// Valores por defecto cuando no hay configuración guardada.
const (
	DefaultCompanyName    = "أسكا المغربي للتجارة والديكور"
	DefaultCompanyAddress = "تعز، اليمن"
	DefaultCompanyPhone   = "+967 777 777 777"
	DefaultTaxPercent     = 15
)

// DefaultSettings devuelve la configuración inicial.
func DefaultSettings() Settings {
	return Settings{
		LastInvoiceNumber: 0,
		DefaultTaxPercent: decimal.NewFromInt(DefaultTaxPercent),
		CompanyName:       DefaultCompanyName,
		CompanyAddress:    DefaultCompanyAddress,
		CompanyPhone:      DefaultCompanyPhone,
	}
}

// SettingsPatch campos actualizables de Settings. nil = no modificar.
type SettingsPatch struct {
	LastInvoiceNumber *int
	DefaultTaxPercent *decimal.Decimal
	CompanyName       *string
	CompanyAddress    *string
	CompanyPhone      *string
}

// Apply copia sobre s solo los campos presentes en el patch.
func (p SettingsPatch) Apply(s *Settings) {
	if p.LastInvoiceNumber != nil {
		s.LastInvoiceNumber = *p.LastInvoiceNumber
	}
	if p.DefaultTaxPercent != nil {
		s.DefaultTaxPercent = *p.DefaultTaxPercent
	}
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.CompanyAddress != nil {
		s.CompanyAddress = *p.CompanyAddress
	}
	if p.CompanyPhone != nil {
		s.CompanyPhone = *p.CompanyPhone
	}
}

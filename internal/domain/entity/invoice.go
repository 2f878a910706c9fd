package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Los montos se persisten como números JSON (150, 22.5), igual que los datos ya guardados.
	decimal.MarshalJSONWithoutQuotes = true
}

// InvoiceType tipo de factura.
type InvoiceType string

const (
	InvoiceTypeCash   InvoiceType = "cash"   // نقداً
	InvoiceTypeQuote  InvoiceType = "quote"  // عرض سعر
	InvoiceTypeCredit InvoiceType = "credit" // آجل
)

// InvoiceTypes tipos válidos en orden de presentación.
var InvoiceTypes = []InvoiceType{InvoiceTypeCash, InvoiceTypeQuote, InvoiceTypeCredit}

// Valid indica si t es uno de los tipos conocidos.
func (t InvoiceType) Valid() bool {
	switch t {
	case InvoiceTypeCash, InvoiceTypeQuote, InvoiceTypeCredit:
		return true
	}
	return false
}

// Label etiqueta en árabe usada en la factura impresa.
func (t InvoiceType) Label() string {
	switch t {
	case InvoiceTypeCash:
		return "نقداً"
	case InvoiceTypeQuote:
		return "عرض سعر"
	case InvoiceTypeCredit:
		return "آجل"
	}
	return string(t)
}

// DeletedCustomerLabel se muestra cuando la factura apunta a un cliente que ya no existe.
const DeletedCustomerLabel = "عميل محذوف"

// InvoiceItem línea de factura. No tiene ciclo de vida propio fuera de su factura.
type InvoiceItem struct {
	ID            string          `json:"id"`
	DescriptionAr string          `json:"description_ar"`
	DescriptionEn string          `json:"description_en"`
	Qty           int             `json:"qty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"` // qty × unit_price
	Notes         string          `json:"notes,omitempty"`
}

// Totals montos derivados de una factura, redondeados a centésimas.
// total = (subtotal - discountAmount) + taxAmount.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

// Invoice cabecera de factura con sus líneas.
// Los totales se calculan una sola vez al guardar y no se recalculan al leer.
type Invoice struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"` // INV-<año>-<secuencia 4 dígitos>
	Type            InvoiceType     `json:"type"`
	CustomerID      string          `json:"customerId"` // referencia débil
	IssueDate       string          `json:"issueDate"`  // YYYY-MM-DD
	DueDate         string          `json:"dueDate,omitempty"`
	Items           []InvoiceItem   `json:"items"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Totals
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Invoice) RecordID() string { return i.ID }

func (i *Invoice) Stamp(id string, createdAt time.Time) {
	i.ID = id
	i.CreatedAt = createdAt
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = createdAt
	}
}

func (i *Invoice) Touch(updatedAt time.Time) { i.UpdatedAt = updatedAt }

// InvoicePatch campos actualizables de una factura. nil = no modificar.
// Items reemplaza la lista completa cuando no es nil.
type InvoicePatch struct {
	Type            *InvoiceType
	CustomerID      *string
	IssueDate       *string
	DueDate         *string
	Items           []InvoiceItem
	TaxPercent      *decimal.Decimal
	DiscountPercent *decimal.Decimal
	Totals          *Totals
	Notes           *string
}

// Apply copia sobre inv solo los campos presentes en el patch.
func (p InvoicePatch) Apply(inv *Invoice) {
	if p.Type != nil {
		inv.Type = *p.Type
	}
	if p.CustomerID != nil {
		inv.CustomerID = *p.CustomerID
	}
	if p.IssueDate != nil {
		inv.IssueDate = *p.IssueDate
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Items != nil {
		inv.Items = p.Items
	}
	if p.TaxPercent != nil {
		inv.TaxPercent = *p.TaxPercent
	}
	if p.DiscountPercent != nil {
		inv.DiscountPercent = *p.DiscountPercent
	}
	if p.Totals != nil {
		inv.Totals = *p.Totals
	}
	if p.Notes != nil {
		inv.Notes = *p.Notes
	}
}

package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// InvoiceItemRequest línea de factura (descripción, cantidad, precio unitario).
type InvoiceItemRequest struct {
	DescriptionAr string          `json:"description_ar" validate:"required"`
	DescriptionEn string          `json:"description_en"`
	Qty           int             `json:"qty" validate:"gte=1"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Notes         string          `json:"notes,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// TaxPercent nil = IVA por defecto de la configuración.
type CreateInvoiceRequest struct {
	Type            string               `json:"type" validate:"required,oneof=cash quote credit"`
	CustomerID      string               `json:"customerId" validate:"required"`
	IssueDate       string               `json:"issueDate" validate:"required,datetime=2006-01-02"`
	DueDate         string               `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Items           []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	TaxPercent      *decimal.Decimal     `json:"taxPercent,omitempty"`
	DiscountPercent decimal.Decimal      `json:"discountPercent"`
	Notes           string               `json:"notes,omitempty"`
}

// Validate aplica las mismas reglas que el formulario de nueva factura:
// cliente elegido, descripción árabe en todas las líneas, qty > 0 y precio >= 0.
func (r *CreateInvoiceRequest) Validate() error {
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	r.Notes = strings.TrimSpace(r.Notes)
	trimItems(r.Items)
	if err := validateStruct(r); err != nil {
		return err
	}
	if err := validateItemPrices(r.Items); err != nil {
		return err
	}
	if r.TaxPercent != nil {
		if err := validatePercent("taxPercent", *r.TaxPercent); err != nil {
			return err
		}
	}
	return validatePercent("discountPercent", r.DiscountPercent)
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id. Items reemplaza todas las líneas.
type UpdateInvoiceRequest struct {
	Type            *string              `json:"type,omitempty" validate:"omitempty,oneof=cash quote credit"`
	CustomerID      *string              `json:"customerId,omitempty"`
	IssueDate       *string              `json:"issueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate         *string              `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Items           []InvoiceItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	TaxPercent      *decimal.Decimal     `json:"taxPercent,omitempty"`
	DiscountPercent *decimal.Decimal     `json:"discountPercent,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
}

// Validate reglas de UpdateInvoiceRequest.
func (r *UpdateInvoiceRequest) Validate() error {
	trimPtr(r.CustomerID)
	trimPtr(r.Notes)
	trimItems(r.Items)
	if r.CustomerID != nil && *r.CustomerID == "" {
		return invalid("customerId no puede quedar vacío")
	}
	if err := validateStruct(r); err != nil {
		return err
	}
	if err := validateItemPrices(r.Items); err != nil {
		return err
	}
	if r.TaxPercent != nil {
		if err := validatePercent("taxPercent", *r.TaxPercent); err != nil {
			return err
		}
	}
	if r.DiscountPercent != nil {
		return validatePercent("discountPercent", *r.DiscountPercent)
	}
	return nil
}

// PreviewTotalsRequest body para POST /api/invoices/preview.
type PreviewTotalsRequest struct {
	Items           []InvoiceItemRequest `json:"items" validate:"dive"`
	TaxPercent      *decimal.Decimal     `json:"taxPercent,omitempty"`
	DiscountPercent decimal.Decimal      `json:"discountPercent"`
}

// Validate reglas de PreviewTotalsRequest (la lista puede estar vacía).
func (r *PreviewTotalsRequest) Validate() error {
	trimItems(r.Items)
	for i := range r.Items {
		if r.Items[i].Qty < 1 {
			return invalid("items[%d].qty debe ser >= 1", i)
		}
	}
	if err := validateItemPrices(r.Items); err != nil {
		return err
	}
	if r.TaxPercent != nil {
		if err := validatePercent("taxPercent", *r.TaxPercent); err != nil {
			return err
		}
	}
	return validatePercent("discountPercent", r.DiscountPercent)
}

func trimItems(items []InvoiceItemRequest) {
	for i := range items {
		items[i].DescriptionAr = strings.TrimSpace(items[i].DescriptionAr)
		items[i].DescriptionEn = strings.TrimSpace(items[i].DescriptionEn)
		items[i].Notes = strings.TrimSpace(items[i].Notes)
	}
}

func validateItemPrices(items []InvoiceItemRequest) error {
	for i, it := range items {
		if it.UnitPrice.IsNegative() {
			return invalid("items[%d].unit_price no puede ser negativo", i)
		}
	}
	return nil
}

func validatePercent(field string, p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(hundred) {
		return invalid("%s debe estar entre 0 y 100", field)
	}
	return nil
}

// InvoiceFilter filtros de GET /api/invoices.
type InvoiceFilter struct {
	Query string `query:"q"`    // número, nombre del cliente o notas
	Type  string `query:"type"` // cash, quote, credit; vacío = todas
}

// TotalsResponse montos calculados de una factura.
type TotalsResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

// NewTotalsResponse mapea entity.Totals.
func NewTotalsResponse(t entity.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		TaxAmount:      t.TaxAmount,
		Total:          t.Total,
	}
}

// InvoiceItemResponse línea de detalle en la respuesta.
type InvoiceItemResponse struct {
	ID            string          `json:"id"`
	DescriptionAr string          `json:"description_ar"`
	DescriptionEn string          `json:"description_en"`
	Qty           int             `json:"qty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
	Notes         string          `json:"notes,omitempty"`
}

// InvoiceResponse factura con detalle para GET /api/invoices/:id.
// CustomerName trae entity.DeletedCustomerLabel cuando el cliente ya no existe.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	Number          string                `json:"number"`
	Type            string                `json:"type"`
	TypeLabel       string                `json:"typeLabel"`
	CustomerID      string                `json:"customerId"`
	CustomerName    string                `json:"customerName"`
	CustomerDeleted bool                  `json:"customerDeleted,omitempty"`
	IssueDate       string                `json:"issueDate"`
	DueDate         string                `json:"dueDate,omitempty"`
	Items           []InvoiceItemResponse `json:"items"`
	TaxPercent      decimal.Decimal       `json:"taxPercent"`
	DiscountPercent decimal.Decimal       `json:"discountPercent"`
	TotalsResponse
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewInvoiceResponse mapea la entidad; customer nil = cliente eliminado.
func NewInvoiceResponse(inv *entity.Invoice, customer *entity.Customer) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		Type:            string(inv.Type),
		TypeLabel:       inv.Type.Label(),
		CustomerID:      inv.CustomerID,
		CustomerName:    entity.DeletedCustomerLabel,
		CustomerDeleted: customer == nil,
		IssueDate:       inv.IssueDate,
		DueDate:         inv.DueDate,
		Items:           make([]InvoiceItemResponse, 0, len(inv.Items)),
		TaxPercent:      inv.TaxPercent,
		DiscountPercent: inv.DiscountPercent,
		TotalsResponse:  NewTotalsResponse(inv.Totals),
		Notes:           inv.Notes,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
	if customer != nil {
		resp.CustomerName = customer.Name
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ID:            it.ID,
			DescriptionAr: it.DescriptionAr,
			DescriptionEn: it.DescriptionEn,
			Qty:           it.Qty,
			UnitPrice:     it.UnitPrice,
			LineTotal:     it.LineTotal,
			Notes:         it.Notes,
		})
	}
	return resp
}

// InvoiceSummary fila de los listados (sin líneas).
type InvoiceSummary struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	Type         string          `json:"type"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	IssueDate    string          `json:"issueDate"`
	DueDate      string          `json:"dueDate,omitempty"`
	ItemCount    int             `json:"itemCount"`
	Total        decimal.Decimal `json:"total"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewInvoiceSummary mapea la entidad a una fila de listado.
func NewInvoiceSummary(inv *entity.Invoice, customerName string) InvoiceSummary {
	return InvoiceSummary{
		ID:           inv.ID,
		Number:       inv.Number,
		Type:         string(inv.Type),
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		IssueDate:    inv.IssueDate,
		DueDate:      inv.DueDate,
		ItemCount:    len(inv.Items),
		Total:        inv.Total,
		Notes:        inv.Notes,
		CreatedAt:    inv.CreatedAt,
	}
}

// NextNumberResponse respuesta de GET /api/invoices/next-number.
type NextNumberResponse struct {
	Number string `json:"number"`
}

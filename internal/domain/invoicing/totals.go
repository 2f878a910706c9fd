// Package invoicing contiene los cálculos puros de facturación: totales y formato del consecutivo.
package invoicing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/pkg/money"
)

// LineTotal qty × unit_price, sin redondear; solo se redondean los totales.
func LineTotal(qty int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// ComputeTotals calcula subtotal, descuento, impuesto y total de una lista de líneas.
//
//	subtotal       = Σ line_total
//	discountAmount = subtotal × discount / 100
//	taxAmount      = (subtotal - discountAmount) × tax / 100
//	total          = (subtotal - discountAmount) + taxAmount
//
// Los cuatro valores se redondean con money.Round sobre los valores intermedios sin redondear.
// No valida: porcentajes negativos se aceptan y una lista vacía da todo en cero.
func ComputeTotals(items []entity.InvoiceItem, taxPercent, discountPercent decimal.Decimal) entity.Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}
	discount := money.Percent(subtotal, discountPercent)
	taxable := subtotal.Sub(discount)
	tax := money.Percent(taxable, taxPercent)
	total := taxable.Add(tax)

	return entity.Totals{
		Subtotal:       money.Round(subtotal),
		DiscountAmount: money.Round(discount),
		TaxAmount:      money.Round(tax),
		Total:          money.Round(total),
	}
}

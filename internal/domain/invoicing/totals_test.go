package invoicing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/invoicing"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func item(lineTotal string) entity.InvoiceItem {
	return entity.InvoiceItem{LineTotal: dec(lineTotal)}
}

func assertTotals(t *testing.T, got entity.Totals, subtotal, discount, tax, total string) {
	t.Helper()
	assert.True(t, got.Subtotal.Equal(dec(subtotal)), "subtotal = %s, se esperaba %s", got.Subtotal, subtotal)
	assert.True(t, got.DiscountAmount.Equal(dec(discount)), "discountAmount = %s, se esperaba %s", got.DiscountAmount, discount)
	assert.True(t, got.TaxAmount.Equal(dec(tax)), "taxAmount = %s, se esperaba %s", got.TaxAmount, tax)
	assert.True(t, got.Total.Equal(dec(total)), "total = %s, se esperaba %s", got.Total, total)
}

func TestComputeTotals_IVA15SinDescuento(t *testing.T) {
	got := invoicing.ComputeTotals([]entity.InvoiceItem{item("150")}, dec("15"), dec("0"))
	assertTotals(t, got, "150", "0", "22.5", "172.5")
}

func TestComputeTotals_ListaVacia(t *testing.T) {
	got := invoicing.ComputeTotals(nil, dec("15"), dec("10"))
	assertTotals(t, got, "0", "0", "0", "0")
}

func TestComputeTotals_SoloDescuento(t *testing.T) {
	got := invoicing.ComputeTotals([]entity.InvoiceItem{item("100")}, dec("0"), dec("50"))
	assertTotals(t, got, "100", "50", "0", "50")
}

func TestComputeTotals_DescuentoEImpuesto(t *testing.T) {
	items := []entity.InvoiceItem{item("100"), item("33.33")}
	// subtotal 133.33, descuento 10% = 13.333, base 119.997, IVA 15% = 17.99955
	got := invoicing.ComputeTotals(items, dec("15"), dec("10"))
	assertTotals(t, got, "133.33", "13.33", "18", "138")
}

func TestComputeTotals_PorcentajeNegativoNoFalla(t *testing.T) {
	got := invoicing.ComputeTotals([]entity.InvoiceItem{item("100")}, dec("-10"), dec("0"))
	assertTotals(t, got, "100", "0", "-10", "90")
}

func TestComputeTotals_InvarianteTotal(t *testing.T) {
	items := []entity.InvoiceItem{item("19.99"), item("250"), item("0.01")}
	got := invoicing.ComputeTotals(items, dec("5"), dec("0"))
	assert.True(t, got.Total.Equal(got.Subtotal.Sub(got.DiscountAmount).Add(got.TaxAmount)))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, invoicing.LineTotal(3, dec("50")).Equal(dec("150")))
	assert.True(t, invoicing.LineTotal(3, dec("0.335")).Equal(dec("1.005")))
	assert.True(t, invoicing.LineTotal(0, dec("10")).IsZero())
}

func TestComputeTotals_LineasSinRedondear(t *testing.T) {
	line := invoicing.LineTotal(3, dec("0.335"))
	items := []entity.InvoiceItem{{Qty: 3, UnitPrice: dec("0.335"), LineTotal: line}, {Qty: 3, UnitPrice: dec("0.335"), LineTotal: line}}
	got := invoicing.ComputeTotals(items, dec("0"), dec("0"))
	assertTotals(t, got, "2.01", "0", "0", "2.01")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-2026-0001", invoicing.FormatNumber(2026, 1))
	assert.Equal(t, "INV-2025-0420", invoicing.FormatNumber(2025, 420))
	assert.Equal(t, "INV-2025-12345", invoicing.FormatNumber(2025, 12345))
}

// Package money centraliza el redondeo monetario usado en todos los cálculos de totales.
package money

import "github.com/shopspring/decimal"

// Places cantidad de decimales con la que se guardan y muestran los montos.
const Places = 2

var half = decimal.NewFromFloat(0.5)

// Round redondea a centésimas con la regla "half up": floor(x·100 + 0.5) / 100.
// Para negativos el empate sube hacia +∞ (-2.345 → -2.34).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Shift(Places).Add(half).Floor().Shift(-Places)
}

// Percent devuelve base × pct / 100 sin redondear.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(decimal.NewFromInt(100))
}

// Format devuelve el monto con dos decimales fijos, ej: "172.50".
func Format(d decimal.Decimal) string {
	return Round(d).StringFixed(Places)
}

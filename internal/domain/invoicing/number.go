package invoicing

import (
	"fmt"
	"time"
)

// NumberPrefix prefijo de todos los consecutivos.
const NumberPrefix = "INV"

// FormatNumber devuelve INV-<año>-<seq con 4 dígitos>. Secuencias > 9999 no se truncan.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", NumberPrefix, year, seq)
}

// FormatNumberAt usa el año de t.
func FormatNumberAt(t time.Time, seq int) string {
	return FormatNumber(t.Year(), seq)
}

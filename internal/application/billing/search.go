package billing

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
)

// fold normaliza para comparar sin distinguir mayúsculas (incluye formas no ASCII).
// cases.Caser guarda estado: se crea uno por llamada.
func fold(s string) string {
	return cases.Fold().String(s)
}

// matchesAny indica si alguno de los campos contiene query. Query vacío coincide siempre.
func matchesAny(query string, fields ...string) bool {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(fold(f), q) {
			return true
		}
	}
	return false
}

// customerNames indexa el nombre de cada cliente por ID.
func customerNames(customers []entity.Customer) map[string]string {
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	return names
}

// filterInvoices aplica búsqueda (número, nombre del cliente o notas) y tipo; resultado más reciente primero.
// Las facturas de clientes eliminados se buscan por la etiqueta de cliente eliminado.
func filterInvoices(invoices []entity.Invoice, names map[string]string, query string, typ entity.InvoiceType) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if typ != "" && inv.Type != typ {
			continue
		}
		if !matchesAny(query, inv.Number, customerNameOf(names, inv.CustomerID), inv.Notes) {
			continue
		}
		out = append(out, inv)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func customerNameOf(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return entity.DeletedCustomerLabel
}

// Package pdf implementa la factura imprimible (A4) de ASKA con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + dirección/tel │ Tipo + N° + Fechas        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre (o cliente eliminado) + tel / dir / fiscal │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Descripción (ar / en) | Cant | P.Unit | Total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto / TOTAL            │
//	│  NOTAS                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbilling "github.com/jhoicas/aska-invoice/internal/application/billing"
	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const customFontFamily = "aska"

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
// Con fontPath vacío usa helvetica, que no tiene glifos árabes; para imprimir
// textos en árabe hay que configurar una fuente TTF con PDF_FONT_PATH.
type MarotoPDFGenerator struct {
	fontPath string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(fontPath string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{fontPath: fontPath}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, doc appbilling.InvoiceDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc.Invoice == nil {
		return nil, fmt.Errorf("pdf: documento sin factura")
	}

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle("Invoice "+doc.Invoice.Number, true).
		WithAuthor(doc.Settings.CompanyName, true)

	family := "helvetica"
	if g.fontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(customFontFamily, fontstyle.Normal, g.fontPath).
			AddUTF8Font(customFontFamily, fontstyle.Bold, g.fontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente %s: %w", g.fontPath, err)
		}
		builder = builder.WithCustomFonts(fonts)
		family = customFontFamily
	}
	cfg := builder.WithDefaultFont(&props.Font{Family: family, Size: 9}).Build()

	m := maroto.New(cfg)
	inv := doc.Invoice

	m.AddRows(headerRow(inv, doc.Settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(inv.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(inv)...)

	if inv.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Notes / ملاحظات", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(inv.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfDoc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y tipo + número + fechas (der).
func headerRow(inv *entity.Invoice, s entity.Settings) core.Row {
	right := col.New(5).Add(
		text.New(fmt.Sprintf("%s / %s", typeTitle(inv.Type), inv.Type.Label()), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
		text.New(inv.Number, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
		}),
		text.New("Date: "+inv.IssueDate, props.Text{
			Size: 8, Align: align.Right, Top: 13, Color: colorGray,
		}),
	)
	if inv.Type == entity.InvoiceTypeCredit && inv.DueDate != "" {
		right.Add(text.New("Due: "+inv.DueDate, props.Text{
			Size: 8, Align: align.Right, Top: 17, Color: colorGray,
		}))
	}

	return row.New(22).Add(
		col.New(7).Add(
			text.New(s.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(s.CompanyAddress, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New("Tel: "+s.CompanyPhone, props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
		right,
	)
}

// customerRow: datos del cliente o la etiqueta de cliente eliminado.
func customerRow(doc appbilling.InvoiceDocument) core.Row {
	details := "—"
	if c := doc.Customer; c != nil {
		details = fmt.Sprintf("Tel: %s   |   %s", nonEmpty(c.Phone, "—"), nonEmpty(c.Address, "—"))
		if c.TaxNumber != "" {
			details += "   |   Tax No: " + c.TaxNumber
		}
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Customer / العميل", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.CustomerName(), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(details, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Description", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Unit price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea; la descripción en inglés va debajo de la árabe.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		height := 7.0
		desc := col.New(5).Add(text.New(it.DescriptionAr, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}))
		if it.DescriptionEn != "" {
			desc.Add(text.New(it.DescriptionEn, props.Text{Size: 7, Align: align.Left, Top: 5, Left: 1, Color: colorGray}))
			height = 10
		}
		result = append(result, row.New(height).Add(
			col.New(1).Add(text.New(fmt.Sprint(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			desc,
			col.New(1).Add(text.New(fmt.Sprint(it.Qty), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatMoney(it.LineTotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha. El descuento solo aparece si hay.
func totalsRows(inv *entity.Invoice) []core.Row {
	totalLine := func(label, value string, grand bool) core.Row {
		p := props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1}
		if grand {
			p.Style = fontstyle.Bold
			p.Size = 10
			p.Color = colorPrimary
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, p)),
			col.New(3).Add(text.New(value, p)),
		)
	}

	rows := []core.Row{totalLine("Subtotal:", formatMoney(inv.Subtotal), false)}
	if !inv.DiscountAmount.IsZero() {
		rows = append(rows, totalLine(fmt.Sprintf("Discount (%s%%):", inv.DiscountPercent), "-"+formatMoney(inv.DiscountAmount), false))
	}
	rows = append(rows,
		totalLine(fmt.Sprintf("Tax (%s%%):", inv.TaxPercent), formatMoney(inv.TaxAmount), false),
		totalLine("TOTAL:", formatMoney(inv.Total), true),
	)
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func typeTitle(t entity.InvoiceType) string {
	switch t {
	case entity.InvoiceTypeQuote:
		return "QUOTATION"
	case entity.InvoiceTypeCredit:
		return "CREDIT INVOICE"
	}
	return "CASH INVOICE"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

var printer = message.NewPrinter(language.English)

// formatMoney separador de miles y dos decimales. Ej: 1234.5 → "1,234.50".
func formatMoney(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", money.Round(d).InexactFloat64())
}

// Package xlsx exporta listados de facturas a Excel con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appbilling "github.com/jhoicas/aska-invoice/internal/application/billing"
	"github.com/jhoicas/aska-invoice/pkg/money"
)

// Hojas del libro exportado.
const (
	SheetInvoices = "Invoices"
	SheetItems    = "Items"
)

var (
	invoiceHeadings = []any{"Number", "Type", "Customer", "Issue date", "Due date", "Subtotal", "Discount %", "Discount", "Tax %", "Tax", "Total", "Notes"}
	itemHeadings    = []any{"Invoice", "Description (ar)", "Description (en)", "Qty", "Unit price", "Line total"}
)

var _ appbilling.InvoiceExporter = (*Exporter)(nil)

// Exporter implementa billing.InvoiceExporter: una hoja con las facturas y otra con sus líneas.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportInvoices devuelve el libro .xlsx en memoria.
func (e *Exporter) ExportInvoices(ctx context.Context, docs []appbilling.InvoiceDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetInvoices); err != nil {
		return nil, fmt.Errorf("xlsx: hoja de facturas: %w", err)
	}
	if _, err := f.NewSheet(SheetItems); err != nil {
		return nil, fmt.Errorf("xlsx: hoja de líneas: %w", err)
	}
	if err := setRow(f, SheetInvoices, 1, invoiceHeadings); err != nil {
		return nil, err
	}
	if err := setRow(f, SheetItems, 1, itemHeadings); err != nil {
		return nil, err
	}

	itemRow := 2
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		inv := doc.Invoice
		err := setRow(f, SheetInvoices, i+2, []any{
			inv.Number,
			string(inv.Type),
			doc.CustomerName(),
			inv.IssueDate,
			inv.DueDate,
			amount(inv.Subtotal),
			amount(inv.DiscountPercent),
			amount(inv.DiscountAmount),
			amount(inv.TaxPercent),
			amount(inv.TaxAmount),
			amount(inv.Total),
			inv.Notes,
		})
		if err != nil {
			return nil, err
		}
		for _, it := range inv.Items {
			err := setRow(f, SheetItems, itemRow, []any{
				inv.Number,
				it.DescriptionAr,
				it.DescriptionEn,
				it.Qty,
				amount(it.UnitPrice),
				amount(it.LineTotal),
			})
			if err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, rowNo int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d de %s: %w", rowNo, sheet, err)
	}
	return nil
}

// amount los montos van como número para que Excel pueda sumarlos.
func amount(d decimal.Decimal) float64 {
	return money.Round(d).InexactFloat64()
}

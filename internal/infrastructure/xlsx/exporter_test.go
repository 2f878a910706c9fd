package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appbilling "github.com/jhoicas/aska-invoice/internal/application/billing"
	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/xlsx"
)

func TestExporter_HojasYFilas(t *testing.T) {
	inv := &entity.Invoice{
		Number:    "INV-2025-0001",
		Type:      entity.InvoiceTypeCash,
		IssueDate: "2025-01-15",
		Items: []entity.InvoiceItem{
			{DescriptionAr: "دهان داخلي", DescriptionEn: "Interior Paint", Qty: 3, UnitPrice: decimal.NewFromInt(50), LineTotal: decimal.NewFromInt(150)},
			{DescriptionAr: "فرشاة", Qty: 1, UnitPrice: decimal.NewFromInt(5), LineTotal: decimal.NewFromInt(5)},
		},
		TaxPercent: decimal.NewFromInt(15),
		Totals: entity.Totals{
			Subtotal:  decimal.NewFromInt(155),
			TaxAmount: decimal.RequireFromString("23.25"),
			Total:     decimal.RequireFromString("178.25"),
		},
	}
	docs := []appbilling.InvoiceDocument{{Invoice: inv}}

	data, err := xlsx.NewExporter().ExportInvoices(context.Background(), docs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetInvoices, xlsx.SheetItems}, f.GetSheetList())

	invoices, err := f.GetRows(xlsx.SheetInvoices)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "Number", invoices[0][0])
	assert.Equal(t, "INV-2025-0001", invoices[1][0])
	assert.Equal(t, entity.DeletedCustomerLabel, invoices[1][2])
	assert.Equal(t, "178.25", invoices[1][10])

	items, err := f.GetRows(xlsx.SheetItems)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "دهان داخلي", items[1][1])
	assert.Equal(t, "3", items[1][3])
}

func TestExporter_SinFacturas(t *testing.T) {
	data, err := xlsx.NewExporter().ExportInvoices(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsx.SheetInvoices)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

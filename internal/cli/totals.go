package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/invoicing"
	"github.com/jhoicas/aska-invoice/pkg/money"
)

// NewTotalsCommand calcula totales sin tocar el almacenamiento.
//
//	aska totals --tax 15 --discount 10 3:50 1:33.33
func NewTotalsCommand(opts *RootOptions) *cobra.Command {
	var tax, discount string
	cmd := &cobra.Command{
		Use:   "totals <qty:precio>...",
		Short: "Calcular subtotal, descuento, impuesto y total",
		RunE: func(cmd *cobra.Command, args []string) error {
			taxPercent, err := parsePercent("tax", tax)
			if err != nil {
				return err
			}
			discountPercent, err := parsePercent("discount", discount)
			if err != nil {
				return err
			}
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			totals := invoicing.ComputeTotals(items, taxPercent, discountPercent)
			text := fmt.Sprintf("Subtotal:  %s\nDescuento: %s\nImpuesto:  %s\nTotal:     %s",
				money.Format(totals.Subtotal),
				money.Format(totals.DiscountAmount),
				money.Format(totals.TaxAmount),
				money.Format(totals.Total),
			)
			return opts.print(cmd, dto.NewTotalsResponse(totals), text)
		},
	}
	cmd.Flags().StringVar(&tax, "tax", strconv.Itoa(entity.DefaultTaxPercent), "porcentaje de impuesto (0-100)")
	cmd.Flags().StringVar(&discount, "discount", "0", "porcentaje de descuento (0-100)")
	return cmd
}

func parsePercent(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s inválido: %w", name, err)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, fmt.Errorf("--%s debe estar entre 0 y 100", name)
	}
	return d, nil
}

// parseItems convierte "qty:precio" en líneas con su line_total.
func parseItems(args []string) ([]entity.InvoiceItem, error) {
	items := make([]entity.InvoiceItem, 0, len(args))
	for _, arg := range args {
		qtyStr, priceStr, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("línea %q: formato esperado qty:precio", arg)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("línea %q: qty debe ser un entero >= 1", arg)
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("línea %q: precio inválido", arg)
		}
		items = append(items, entity.InvoiceItem{
			Qty:       qty,
			UnitPrice: price,
			LineTotal: invoicing.LineTotal(qty, price),
		})
	}
	return items, nil
}

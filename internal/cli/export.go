package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/bootstrap"
)

// NewExportCommand exporta las facturas a Excel.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var out string
	var filter dto.InvoiceFilter
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exportar facturas a .xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				data, filename, err := app.Export.Export(ctx, filter)
				if err != nil {
					return err
				}
				if out == "" {
					out = filename
				}
				return writeFile(cmd, opts, out, data)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "archivo de salida (por defecto facturas_<fecha>.xlsx)")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "texto a buscar (número, cliente o notas)")
	cmd.Flags().StringVar(&filter.Type, "type", "", "tipo de factura (cash|quote|credit)")
	return cmd
}

// NewPDFCommand genera el PDF de una factura.
func NewPDFCommand(opts *RootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "pdf <invoice-id>",
		Short: "Generar el PDF de una factura",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				data, filename, err := app.PDF.DownloadInvoicePDF(ctx, args[0])
				if err != nil {
					return err
				}
				if out == "" {
					out = filename
				}
				return writeFile(cmd, opts, out, data)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "archivo de salida (por defecto <número>.pdf)")
	return cmd
}

func writeFile(cmd *cobra.Command, opts *RootOptions, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return opts.print(cmd, map[string]any{"file": path, "bytes": len(data)}, fmt.Sprintf("%s (%d bytes)", path, len(data)))
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/aska-invoice/internal/bootstrap"
)

// NewSeedCommand carga un cliente y una factura de ejemplo si no hay datos.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Cargar datos de ejemplo (solo si no hay clientes ni facturas)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				seeded, err := app.Seed.Seed(ctx)
				if err != nil {
					return err
				}
				text := "ya existen datos, no se cargó nada"
				if seeded {
					text = "datos de ejemplo cargados"
				}
				return opts.print(cmd, map[string]bool{"seeded": seeded}, text)
			})
		},
	}
}

// NewNextNumberCommand asigna (consume) el siguiente consecutivo; con --peek solo lo muestra.
func NewNextNumberCommand(opts *RootOptions) *cobra.Command {
	var peek bool
	cmd := &cobra.Command{
		Use:   "next-number",
		Short: "Asignar el siguiente número de factura",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				next := app.Numbering.Next
				if peek {
					next = app.Numbering.Peek
				}
				number, err := next(ctx)
				if err != nil {
					return err
				}
				return opts.print(cmd, map[string]string{"number": number}, number)
			})
		},
	}
	cmd.Flags().BoolVar(&peek, "peek", false, "mostrar el número sin consumirlo")
	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/bootstrap"
)

// NewSettingsCommand agrupa show y reset.
func NewSettingsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Ver o restaurar la configuración de la empresa",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Mostrar la configuración vigente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.Settings.Get(ctx)
				if err != nil {
					return err
				}
				return opts.print(cmd, s, settingsText(s))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restaurar valores por defecto (conserva el consecutivo)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.Settings.Reset(ctx)
				if err != nil {
					return err
				}
				return opts.print(cmd, s, settingsText(s))
			})
		},
	})

	return cmd
}

func settingsText(s *dto.SettingsResponse) string {
	return fmt.Sprintf("Empresa:        %s\nDirección:      %s\nTeléfono:       %s\nIVA por defecto: %s%%\nÚltima factura: %d",
		s.CompanyName, s.CompanyAddress, s.CompanyPhone, s.DefaultTaxPercent, s.LastInvoiceNumber)
}

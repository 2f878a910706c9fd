// Package cli implementa la CLI administrativa "aska" (cobra).
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/aska-invoice/internal/bootstrap"
	"github.com/jhoicas/aska-invoice/pkg/config"
	"github.com/jhoicas/aska-invoice/pkg/logger"
)

// RootOptions flags globales y acceso perezoso a la aplicación.
type RootOptions struct {
	Format string // "text" | "json"

	open  func(ctx context.Context) (*bootstrap.App, error)
	owned bool // el comando abrió el backend y debe cerrarlo
}

// ValidFormats formatos de salida permitidos.
var ValidFormats = []string{"text", "json"}

// NewRootCommand crea el comando raíz; la aplicación se construye desde la configuración
// (variables de entorno / .env) solo cuando un subcomando la necesita.
func NewRootCommand() *cobra.Command {
	return newRootCommand(true, func(ctx context.Context) (*bootstrap.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
		return bootstrap.New(ctx, cfg, log)
	})
}

// NewRootCommandWithApp usa una aplicación ya construida (tests).
func NewRootCommandWithApp(app *bootstrap.App) *cobra.Command {
	return newRootCommand(false, func(context.Context) (*bootstrap.App, error) { return app, nil })
}

func newRootCommand(owned bool, open func(ctx context.Context) (*bootstrap.App, error)) *cobra.Command {
	opts := &RootOptions{open: open, owned: owned}

	cmd := &cobra.Command{
		Use:   "aska",
		Short: "ASKA - administración de facturación",
		Long:  "Herramientas de administración para clientes, facturas y configuración de ASKA.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("formato inválido %q: debe ser uno de %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "formato de salida (json|text)")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewNextNumberCommand(opts))
	cmd.AddCommand(NewTotalsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewPDFCommand(opts))
	cmd.AddCommand(NewSettingsCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// withApp abre la aplicación, ejecuta fn y cierra el backend si lo abrió el comando.
func (o *RootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := o.open(ctx)
	if err != nil {
		return err
	}
	if o.owned {
		defer app.Close()
	}
	return fn(ctx, app)
}

// print escribe v como JSON (--format json) o text en texto plano.
func (o *RootOptions) print(cmd *cobra.Command, v any, text string) error {
	if o.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

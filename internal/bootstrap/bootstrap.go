// Package bootstrap arma el grafo de dependencias (backend → stores → casos de uso)
// compartido por el servidor HTTP y la CLI.
package bootstrap

import (
	"context"
	"fmt"

	appanalytics "github.com/jhoicas/aska-invoice/internal/application/analytics"
	"github.com/jhoicas/aska-invoice/internal/application/billing"
	"github.com/jhoicas/aska-invoice/internal/application/usecase"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/kv"
	infrapdf "github.com/jhoicas/aska-invoice/internal/infrastructure/pdf"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/storage"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/aska-invoice/internal/interfaces/http"
	"github.com/jhoicas/aska-invoice/pkg/config"
	"github.com/jhoicas/aska-invoice/pkg/logger"
)

// App contenedor de los casos de uso ya cableados.
type App struct {
	Config  *config.Config
	Log     *logger.Logger
	Backend kv.Backend
	Stores  *storage.Stores

	Numbering *billing.InvoiceNumbering
	Customers *billing.CustomerUseCase
	Invoices  *billing.InvoiceUseCase
	PDF       *billing.PDFUseCase
	Export    *billing.ExportUseCase
	Seed      *billing.SeedUseCase
	Settings  *usecase.SettingsUseCase
	Dashboard *appanalytics.DashboardUseCase
}

// New abre el backend configurado y construye la aplicación.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	backend, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: abrir almacenamiento %s: %w", cfg.Storage.Driver, err)
	}
	return NewWithBackend(cfg, log, backend, storage.Options{Log: log}), nil
}

// NewWithBackend construye la aplicación sobre un backend ya abierto (tests).
func NewWithBackend(cfg *config.Config, log *logger.Logger, backend kv.Backend, opts storage.Options) *App {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Log == nil {
		opts.Log = log
	}
	stores := storage.NewStores(backend, cfg.Storage, opts)
	numbering := billing.NewInvoiceNumbering(stores.Settings, opts.Now)

	return &App{
		Config:    cfg,
		Log:       log,
		Backend:   backend,
		Stores:    stores,
		Numbering: numbering,
		Customers: billing.NewCustomerUseCase(stores.Customers),
		Invoices:  billing.NewInvoiceUseCase(stores.Invoices, stores.Customers, stores.Settings, numbering, log),
		PDF: billing.NewPDFUseCase(
			stores.Invoices, stores.Customers, stores.Settings,
			infrapdf.NewMarotoPDFGenerator(cfg.PDF.FontPath),
		),
		Export: billing.NewExportUseCase(
			stores.Invoices, stores.Customers, stores.Settings,
			xlsx.NewExporter(),
		),
		Seed:      billing.NewSeedUseCase(stores.Customers, stores.Invoices, stores.Settings, numbering, log),
		Settings:  usecase.NewSettingsUseCase(stores.Settings),
		Dashboard: appanalytics.NewDashboardUseCase(stores.Invoices, stores.Customers, opts.Now),
	}
}

// RouterDeps dependencias del router HTTP.
func (a *App) RouterDeps() httpRouter.RouterDeps {
	return httpRouter.RouterDeps{
		CustomerUC:    a.Customers,
		InvoiceUC:     a.Invoices,
		InvoicePDF:    a.PDF,
		InvoiceExport: a.Export,
		SettingsUC:    a.Settings,
		DashboardUC:   a.Dashboard,
		Log:           a.Log,
	}
}

// Close libera el backend.
func (a *App) Close() error {
	return a.Backend.Close()
}

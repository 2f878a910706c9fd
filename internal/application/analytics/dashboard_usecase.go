// Package analytics contiene los casos de uso de reportes del negocio (dashboard).
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
	"github.com/jhoicas/aska-invoice/pkg/money"
)

const (
	dashboardRecentInvoices = 5  // filas en el widget de últimas facturas
	dashboardRevenueDays    = 30 // ventana de ingresos recientes
)

// DashboardUseCase genera el resumen del tablero principal.
// Solo lectura: no modifica ningún store.
type DashboardUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil = time.Now.
func NewDashboardUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo, now: now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos lecturas en paralelo (facturas y clientes); los ingresos suman el total de las
// facturas cuya fecha de creación cae en los últimos 30 días.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	since := now.Add(-dashboardRevenueDays * 24 * time.Hour)

	// ── Goroutines para paralelizar las lecturas ──────────────────────────────
	type invoicesResult struct {
		list []entity.Invoice
		err  error
	}
	type customersResult struct {
		list []entity.Customer
		err  error
	}

	invoicesCh := make(chan invoicesResult, 1)
	customersCh := make(chan customersResult, 1)

	go func() {
		list, err := uc.invoiceRepo.List(ctx)
		invoicesCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.customerRepo.List(ctx)
		customersCh <- customersResult{list, err}
	}()

	invoices := <-invoicesCh
	customers := <-customersCh

	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invoices.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	}

	// ── Métricas ──────────────────────────────────────────────────────────────
	revenue := decimal.Zero
	breakdown := make(map[string]int, len(entity.InvoiceTypes))
	for _, typ := range entity.InvoiceTypes {
		breakdown[string(typ)] = 0
	}
	for _, inv := range invoices.list {
		breakdown[string(inv.Type)]++
		if !inv.CreatedAt.Before(since) {
			revenue = revenue.Add(inv.Total)
		}
	}

	names := make(map[string]string, len(customers.list))
	for _, c := range customers.list {
		names[c.ID] = c.Name
	}

	recent := append([]entity.Invoice(nil), invoices.list...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > dashboardRecentInvoices {
		recent = recent[:dashboardRecentInvoices]
	}
	rows := make([]dto.InvoiceSummary, 0, len(recent))
	for i := range recent {
		name, ok := names[recent[i].CustomerID]
		if !ok {
			name = entity.DeletedCustomerLabel
		}
		rows = append(rows, dto.NewInvoiceSummary(&recent[i], name))
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	return &dto.DashboardSummaryDTO{
		TotalInvoices:  len(invoices.list),
		TotalCustomers: len(customers.list),
		RecentRevenue:  money.Round(revenue),
		RevenueDays:    dashboardRevenueDays,
		TypeBreakdown:  breakdown,
		RecentInvoices: rows,
	}, nil
}

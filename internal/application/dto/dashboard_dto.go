package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	TotalInvoices  int             `json:"totalInvoices"`
	TotalCustomers int             `json:"totalCustomers"`
	RecentRevenue  decimal.Decimal `json:"recentRevenue"` // suma de total de facturas creadas en los últimos 30 días
	RevenueDays    int             `json:"revenueDays"`

	// Cantidad de facturas por tipo (cash, quote, credit); los tipos sin facturas van en 0
	TypeBreakdown map[string]int `json:"typeBreakdown"`

	// Últimas facturas creadas (más reciente primero)
	RecentInvoices []InvoiceSummary `json:"recentInvoices"`
}

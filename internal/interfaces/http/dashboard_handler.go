package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/aska-invoice/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del tablero principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del tablero.
// GET /api/dashboard
//
// Respuesta: DashboardSummaryDTO (totalInvoices, totalCustomers, recentRevenue de los
// últimos 30 días, typeBreakdown, recentInvoices[5]).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(summary)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/application/usecase"
)

// SettingsHandler perfil de la empresa e IVA por defecto.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.uc.Get(c.Context())
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(s)
}

// Update PUT /api/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	s, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(s)
}

// Reset POST /api/settings/reset (conserva el consecutivo)
func (h *SettingsHandler) Reset(c *fiber.Ctx) error {
	s, err := h.uc.Reset(c.Context())
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(s)
}

package repository

import (
	"context"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
)

// SettingsRepository persistencia del registro único de configuración.
// Get nunca devuelve "no encontrado": sin datos guardados devuelve entity.DefaultSettings().
type SettingsRepository interface {
	Get(ctx context.Context) (entity.Settings, error)
	Update(ctx context.Context, patch entity.SettingsPatch) (entity.Settings, error)
	// Modify lee, aplica fn y persiste bajo el mismo candado; fn devuelve el patch a aplicar.
	Modify(ctx context.Context, fn func(current entity.Settings) entity.SettingsPatch) (entity.Settings, error)
	// Reset vuelve a los valores por defecto sin tocar LastInvoiceNumber.
	Reset(ctx context.Context) (entity.Settings, error)
}

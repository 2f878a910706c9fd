package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/kv"
	"github.com/jhoicas/aska-invoice/pkg/logger"
)

var _ repository.SettingsRepository = (*SettingsStore)(nil)

// SettingsStore registro único de configuración.
type SettingsStore struct {
	backend kv.Backend
	key     string
	log     *logger.Logger
	mu      sync.Mutex
}

// NewSettingsStore construye el store para el namespace key.
func NewSettingsStore(backend kv.Backend, key string, log *logger.Logger) *SettingsStore {
	if log == nil {
		log = logger.Nop()
	}
	return &SettingsStore{backend: backend, key: key, log: log.Component("settings")}
}

// Get devuelve la configuración guardada o entity.DefaultSettings() si no existe o está corrupta.
// Los campos ausentes en el JSON guardado conservan su valor por defecto.
func (s *SettingsStore) Get(ctx context.Context) (entity.Settings, error) {
	return s.load(ctx)
}

// Update mezcla patch sobre la configuración actual (o la por defecto) y persiste.
func (s *SettingsStore) Update(ctx context.Context, patch entity.SettingsPatch) (entity.Settings, error) {
	return s.Modify(ctx, func(entity.Settings) entity.SettingsPatch { return patch })
}

// Modify lee, calcula el patch con fn y persiste sin soltar el candado.
func (s *SettingsStore) Modify(ctx context.Context, fn func(current entity.Settings) entity.SettingsPatch) (entity.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return entity.Settings{}, err
	}
	fn(current).Apply(&current)

	data, err := json.Marshal(current)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("settings: serializar: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, string(data)); err != nil {
		return entity.Settings{}, fmt.Errorf("settings: guardar: %w", err)
	}
	return current, nil
}

// Reset restaura los datos de la empresa y el IVA por defecto conservando el consecutivo.
func (s *SettingsStore) Reset(ctx context.Context) (entity.Settings, error) {
	return s.Modify(ctx, func(current entity.Settings) entity.SettingsPatch {
		def := entity.DefaultSettings()
		return entity.SettingsPatch{
			DefaultTaxPercent: &def.DefaultTaxPercent,
			CompanyName:       &def.CompanyName,
			CompanyAddress:    &def.CompanyAddress,
			CompanyPhone:      &def.CompanyPhone,
		}
	})
}

func (s *SettingsStore) load(ctx context.Context) (entity.Settings, error) {
	settings := entity.DefaultSettings()
	raw, found, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("settings: leer: %w", err)
	}
	if !found || raw == "" {
		return settings, nil
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("configuración corrupta, se usan valores por defecto")
		return entity.DefaultSettings(), nil
	}
	return settings, nil
}

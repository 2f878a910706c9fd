package usecase

import (
	"context"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
)

// SettingsUseCase perfil de la empresa e IVA por defecto.
// El consecutivo de facturas no se edita desde aquí.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso con el puerto de persistencia.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente (o la por defecto).
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewSettingsResponse(s), nil
}

// Update valida (IVA entre 0 y 100) y guarda solo los campos enviados.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s, err := uc.repo.Update(ctx, in.Patch())
	if err != nil {
		return nil, err
	}
	return dto.NewSettingsResponse(s), nil
}

// Reset restaura los valores por defecto conservando el consecutivo.
func (uc *SettingsUseCase) Reset(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Reset(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewSettingsResponse(s), nil
}

package usecases

import (
	"context"

	"trilhaquiz/internal/domain/settings"
	"trilhaquiz/internal/ports"
)

// SettingsUseCases coordena leitura e escrita das preferências do host.
type SettingsUseCases struct {
	repo ports.SettingsRepository
}

func NewSettingsUseCases(repo ports.SettingsRepository) *SettingsUseCases {
	return &SettingsUseCases{repo: repo}
}

// GetSettings retorna as preferências do host (padrões, se nunca salvas).
func (uc *SettingsUseCases) GetSettings(ctx context.Context, hostID string) (*settings.Settings, error) {
	return uc.repo.Get(ctx, hostID)
}

// SaveSettings valida e persiste as preferências do host.
func (uc *SettingsUseCases) SaveSettings(ctx context.Context, hostID string, s *settings.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return uc.repo.Save(ctx, hostID, s)
}

package usecase

import (
	"context"

	"routecast/internal/domain/entity"
)

// SettingsUsecase reads and updates the settings singleton.
type SettingsUsecase interface {
	// GetSettings returns stored settings, creating the defaults on first read.
	GetSettings(ctx context.Context) (*entity.UserSettings, error)
	UpdateSettings(ctx context.Context, settings *entity.UserSettings) (*entity.UserSettings, error)
}

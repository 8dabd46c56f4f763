package repository

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/errors"
)

// ErrSettingsNotFound is returned before any settings have been stored.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository persists the settings singleton.
type SettingsRepository interface {
	// GetSettings returns the stored settings or ErrSettingsNotFound.
	GetSettings(ctx context.Context) (*entity.UserSettings, error)

	// SaveSettings inserts or replaces the singleton.
	SaveSettings(ctx context.Context, settings *entity.UserSettings) error
}

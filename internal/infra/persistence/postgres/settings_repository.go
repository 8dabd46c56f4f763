package postgres

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/domain/repository"
	"routecast/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the domain.SettingsRepository interface over a single row.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetSettings returns the stored settings row.
func (repo *settingsRepository) GetSettings(ctx context.Context) (*entity.UserSettings, error) {
	var settingsM model.SettingsModel
	if err := repo.db.WithContext(ctx).Where("id = ?", model.SettingsSingletonID).First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get settings")
	}

	return &entity.UserSettings{VoiceMode: entity.VoiceMode(settingsM.VoiceMode)}, nil
}

// SaveSettings upserts the settings row.
func (repo *settingsRepository) SaveSettings(ctx context.Context, settings *entity.UserSettings) error {
	settingsM := &model.SettingsModel{
		ID:        model.SettingsSingletonID,
		VoiceMode: string(settings.VoiceMode),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"voice_mode", "updated_at"}),
		}).
		Create(settingsM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save settings")
	}

	return nil
}

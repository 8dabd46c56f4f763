package impl

import (
	"context"
	"log/slog"

	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/repository"
	"routecast/internal/errors"
	"routecast/internal/usecase"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository, logger *slog.Logger) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings returns stored settings, saving the defaults on first read.
func (srv *settingsService) GetSettings(ctx context.Context) (*entity.UserSettings, error) {
	settings, err := srv.settingsRepo.GetSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "get settings")
	}

	settings = entity.DefaultUserSettings()
	if err := srv.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "save default settings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Default settings created")

	return settings, nil
}

// UpdateSettings replaces the settings singleton.
func (srv *settingsService) UpdateSettings(ctx context.Context, settings *entity.UserSettings) (*entity.UserSettings, error) {
	if !settings.VoiceMode.IsValid() {
		return nil, domainerrors.ErrInvalidVoiceMode.WithDetails(string(settings.VoiceMode))
	}

	if err := srv.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "save settings")
	}

	return settings, nil
}

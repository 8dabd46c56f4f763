package impl

import (
	"context"
	"testing"

	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/repository"
	"routecast/internal/errors"
	mockRepo "routecast/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetSettings_Stored(t *testing.T) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	srv := NewSettingsService(settingsRepo, testLogger())
	ctx := context.Background()
	stored := &entity.UserSettings{VoiceMode: entity.VoiceModeMute}

	settingsRepo.EXPECT().GetSettings(ctx).Return(stored, nil)

	settings, err := srv.GetSettings(ctx)

	require.NoError(t, err)
	assert.Same(t, stored, settings)
}

func TestSettingsService_GetSettings_CreatesDefault(t *testing.T) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	srv := NewSettingsService(settingsRepo, testLogger())
	ctx := context.Background()

	settingsRepo.EXPECT().GetSettings(ctx).Return(nil, repository.ErrSettingsNotFound)
	settingsRepo.EXPECT().SaveSettings(ctx, entity.DefaultUserSettings()).Return(nil)

	settings, err := srv.GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.VoiceModeAll, settings.VoiceMode)
}

func TestSettingsService_GetSettings_StorageError(t *testing.T) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	srv := NewSettingsService(settingsRepo, testLogger())
	ctx := context.Background()

	settingsRepo.EXPECT().GetSettings(ctx).Return(nil, errors.New("connection refused"))

	_, err := srv.GetSettings(ctx)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	srv := NewSettingsService(settingsRepo, testLogger())
	ctx := context.Background()
	update := &entity.UserSettings{VoiceMode: entity.VoiceModeAlerts}

	settingsRepo.EXPECT().SaveSettings(ctx, update).Return(nil)

	settings, err := srv.UpdateSettings(ctx, update)

	require.NoError(t, err)
	assert.Equal(t, entity.VoiceModeAlerts, settings.VoiceMode)
}

func TestSettingsService_UpdateSettings_InvalidVoiceMode(t *testing.T) {
	srv := NewSettingsService(mockRepo.NewMockSettingsRepository(t), testLogger())

	_, err := srv.UpdateSettings(context.Background(), &entity.UserSettings{VoiceMode: "whisper"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVoiceMode))
}

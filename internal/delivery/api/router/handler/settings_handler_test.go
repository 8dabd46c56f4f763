package handler

import (
	"net/http"
	"testing"

	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	mockUsecase "routecast/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandler(t *testing.T) {
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(settingsUC)
	e := newTestEcho()
	e.GET("/settings", h.GetSettings)
	e.POST("/settings", h.UpdateSettings)

	settingsUC.EXPECT().GetSettings(mock.Anything).Return(entity.DefaultUserSettings(), nil).Once()
	rec := doRequest(e, http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var settings entity.UserSettings
	decodeData(t, rec, &settings)
	assert.Equal(t, entity.VoiceModeAll, settings.VoiceMode)

	settingsUC.EXPECT().UpdateSettings(mock.Anything, &entity.UserSettings{VoiceMode: entity.VoiceModeMute}).
		Return(&entity.UserSettings{VoiceMode: entity.VoiceModeMute}, nil).Once()
	rec = doRequest(e, http.MethodPost, "/settings", map[string]string{"voice_mode": "mute"})
	require.Equal(t, http.StatusOK, rec.Code)

	settingsUC.EXPECT().UpdateSettings(mock.Anything, &entity.UserSettings{VoiceMode: "loud"}).
		Return(nil, domainerrors.ErrInvalidVoiceMode.WithDetails("loud")).Once()
	rec = doRequest(e, http.MethodPost, "/settings", map[string]string{"voice_mode": "loud"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_VOICE_MODE", decodeEnvelope(t, rec).Error.Code)

	rec = doRequest(e, http.MethodPost, "/settings", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

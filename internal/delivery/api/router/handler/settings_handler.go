package handler

import (
	"net/http"

	"routecast/internal/delivery/api/response"
	"routecast/internal/domain/entity"
	"routecast/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SettingsHandler serves the settings singleton.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(settingsUC usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// UpdateSettingsRequest is the body of POST /settings.
type UpdateSettingsRequest struct {
	VoiceMode entity.VoiceMode `json:"voice_mode" validate:"required"`
}

// GetSettings handles GET /settings.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings handles POST /settings.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), &entity.UserSettings{VoiceMode: req.VoiceMode})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

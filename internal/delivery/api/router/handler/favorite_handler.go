package handler

import (
	"log/slog"
	"net/http"

	"routecast/internal/delivery/api/response"
	"routecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves saved places.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// ListFavorites handles GET /favorites.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	places, err := h.favoriteUC.ListFavorites(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(places))
}

// SaveFavorite handles POST /favorites.
func (h *FavoriteHandler) SaveFavorite(c echo.Context) error {
	var input usecase.SaveFavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	place, err := h.favoriteUC.SaveFavorite(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, place)
}

// DeleteFavorite handles DELETE /favorites/:id.
func (h *FavoriteHandler) DeleteFavorite(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid favorite ID")
	}

	if err := h.favoriteUC.DeleteFavorite(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite deleted"})
}

// FavoriteQR handles GET /favorites/:id/qr and returns a PNG image.
func (h *FavoriteHandler) FavoriteQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid favorite ID")
	}

	png, err := h.favoriteUC.FavoriteQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

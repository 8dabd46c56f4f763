package usecase

import (
	"context"

	"routecast/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveFavoriteInput represents the input for saving a favorite place
type SaveFavoriteInput struct {
	Name     string              `json:"name" validate:"required,max=100"`
	Location entity.GeoPoint     `json:"location" validate:"required"`
	Type     entity.FavoriteType `json:"type,omitempty"`
	Address  string              `json:"address,omitempty"`
}

// FavoriteUsecase defines the interface for favorite place use cases
type FavoriteUsecase interface {
	ListFavorites(ctx context.Context) ([]*entity.FavoritePlace, error)

	// SaveFavorite creates a place; home and work replace the existing one in place.
	SaveFavorite(ctx context.Context, input *SaveFavoriteInput) (*entity.FavoritePlace, error)

	DeleteFavorite(ctx context.Context, id uuid.UUID) error

	// FavoriteQR renders a saved place as a PNG QR code holding its geo URI.
	FavoriteQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

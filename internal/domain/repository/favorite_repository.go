// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/errors"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when a favorite place is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the interface for favorite place persistence.
type FavoriteRepository interface {
	// CreateFavorite persists a new favorite place.
	CreateFavorite(ctx context.Context, favorite *entity.FavoritePlace) error

	// UpdateFavorite overwrites name, location, address and created_at of an existing place.
	UpdateFavorite(ctx context.Context, favorite *entity.FavoritePlace) error

	// FindFavoriteByID returns a place by ID.
	// Returns ErrFavoriteNotFound if it does not exist.
	FindFavoriteByID(ctx context.Context, id uuid.UUID) (*entity.FavoritePlace, error)

	// FindFavoriteByType returns the first place of a type.
	// Returns ErrFavoriteNotFound if none exists.
	FindFavoriteByType(ctx context.Context, favoriteType entity.FavoriteType) (*entity.FavoritePlace, error)

	// ListFavorites returns places newest first.
	ListFavorites(ctx context.Context, limit int) ([]*entity.FavoritePlace, error)

	// DeleteFavorite removes a place by ID.
	// Returns ErrFavoriteNotFound if nothing was deleted.
	DeleteFavorite(ctx context.Context, id uuid.UUID) error
}

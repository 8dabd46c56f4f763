package postgres

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/domain/repository"
	"routecast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite persists a new saved place.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.FavoritePlace) error {
	if err := repo.db.WithContext(ctx).Create(fromFavoriteDomain(favorite)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "favorite already exists")
		}

		return errors.Wrap(err, "failed to create favorite")
	}

	return nil
}

// UpdateFavorite overwrites an existing saved place.
func (repo *favoriteRepository) UpdateFavorite(ctx context.Context, favorite *entity.FavoritePlace) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("id = ?", favorite.ID).
		Updates(map[string]any{
			"name":       favorite.Name,
			"latitude":   favorite.Location.Lat,
			"longitude":  favorite.Location.Lng,
			"type":       string(favorite.Type),
			"address":    favorite.Address,
			"created_at": favorite.CreatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindFavoriteByID retrieves a saved place by its ID.
func (repo *favoriteRepository) FindFavoriteByID(ctx context.Context, id uuid.UUID) (*entity.FavoritePlace, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by id")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindFavoriteByType returns the newest place of the given type.
// The row is locked when called inside a transaction.
func (repo *favoriteRepository) FindFavoriteByType(ctx context.Context, favoriteType entity.FavoriteType) (*entity.FavoritePlace, error) {
	var favoriteM model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("type = ?", string(favoriteType)).
		Order("created_at DESC").
		First(&favoriteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by type")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// ListFavorites returns up to limit places, newest first.
func (repo *favoriteRepository) ListFavorites(ctx context.Context, limit int) ([]*entity.FavoritePlace, error) {
	var favoriteModels []*model.FavoriteModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.FavoritePlace, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// DeleteFavorite removes a place by its ID.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	// If no rows were affected, it means the place was not found.
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain FavoritePlace entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.FavoritePlace {
	if data == nil {
		return nil
	}

	return &entity.FavoritePlace{
		ID:        data.ID,
		Name:      data.Name,
		Location:  entity.GeoPoint{Lat: data.Latitude, Lng: data.Longitude},
		Type:      entity.FavoriteType(data.Type),
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain FavoritePlace entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.FavoritePlace) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:        data.ID,
		Name:      data.Name,
		Latitude:  data.Location.Lat,
		Longitude: data.Location.Lng,
		Type:      string(data.Type),
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
	}
}

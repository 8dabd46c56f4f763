package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/repository"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/usecase"

	"github.com/google/uuid"
)

const favoritesListLimit = 100

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	qrService    service.QRCodeService
	now          func() time.Time
	logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(
	txManager repository.TransactionManager,
	favoriteRepo repository.FavoriteRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    txManager,
		favoriteRepo: favoriteRepo,
		qrService:    qrService,
		now:          time.Now,
		logger:       logger,
	}
}

// ListFavorites retrieves saved places, newest first
func (s *favoriteService) ListFavorites(ctx context.Context) ([]*entity.FavoritePlace, error) {
	favorites, err := s.favoriteRepo.ListFavorites(ctx, favoritesListLimit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list favorites")
	}

	return favorites, nil
}

// SaveFavorite creates a place, or updates the existing home or work place
func (s *favoriteService) SaveFavorite(ctx context.Context, input *usecase.SaveFavoriteInput) (*entity.FavoritePlace, error) {
	favoriteType := input.Type
	if favoriteType == "" {
		favoriteType = entity.FavoriteTypeFavorite
	}
	if !favoriteType.IsValid() {
		return nil, domainerrors.ErrInvalidFavoriteType.WithDetails(favoriteType.String())
	}
	if !input.Location.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	place := &entity.FavoritePlace{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Location:  input.Location,
		Type:      favoriteType,
		Address:   input.Address,
		CreatedAt: s.now().UTC(),
	}

	if !favoriteType.IsSingleton() {
		if err := s.favoriteRepo.CreateFavorite(ctx, place); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "create favorite")
		}

		return place, nil
	}

	// Home and work: look up and write in one transaction so two saves cannot both insert.
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()

		existing, err := favoriteRepo.FindFavoriteByType(ctx, favoriteType)
		if err != nil && !errors.Is(err, repository.ErrFavoriteNotFound) {
			return errors.Wrap(err, "find favorite by type")
		}

		if existing == nil {
			return errors.Wrap(favoriteRepo.CreateFavorite(ctx, place), "create favorite")
		}

		place.ID = existing.ID

		return errors.Wrap(favoriteRepo.UpdateFavorite(ctx, place), "update favorite")
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "save favorite")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Singleton favorite saved",
		slog.String("type", favoriteType.String()),
		slog.String("favorite_id", place.ID.String()),
	)

	return place, nil
}

// DeleteFavorite removes a saved place
func (s *favoriteService) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	if err := s.favoriteRepo.DeleteFavorite(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete favorite")
	}

	return nil
}

// FavoriteQR renders a saved place as a shareable QR code
func (s *favoriteService) FavoriteQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	place, err := s.favoriteRepo.FindFavoriteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, domainerrors.ErrFavoriteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find favorite")
	}

	png, err := s.qrService.GeneratePlaceQR(place)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to generate favorite QR code",
			slog.String("favorite_id", id.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "generate favorite qr code")
	}

	return png, nil
}

package usecase

import (
	"context"

	"routecast/internal/domain/entity"
)

// TrainingUsecase fits and activates learned models.
type TrainingUsecase interface {
	// Train fits a model on trips. The report is always returned; on failure
	// it carries the message and the error is ErrInsufficientTrainingData,
	// ErrTrainingFailed or ErrModelPersistFailed with the same message as details.
	Train(ctx context.Context, trips []*entity.Trip) (*entity.TrainingReport, error)

	// TrainFromHistory trains on the newest stored trips.
	TrainFromHistory(ctx context.Context) (*entity.TrainingReport, error)
}

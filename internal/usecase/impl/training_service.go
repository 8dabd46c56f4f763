package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"routecast/config"
	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/prediction"
	"routecast/internal/domain/repository"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/metrics"
	"routecast/internal/usecase"
	"routecast/internal/util"

	"go.uber.org/fx"
)

// trainingService implements the TrainingUsecase interface.
type trainingService struct {
	// mu serializes training runs; inference never takes it.
	mu sync.Mutex

	registry     *prediction.Registry
	tripRepo     repository.TripRepository
	artifactRepo repository.ModelArtifactRepository
	mirror       repository.ModelArtifactRepository
	fitter       service.RegressorFitter
	codec        service.ModelCodec
	artifactName string
	minTrips     int
	maxTrips     int
	now          func() time.Time
	logger       *slog.Logger
}

// TrainingServiceParams holds dependencies for TrainingService, injected by Fx.
type TrainingServiceParams struct {
	fx.In

	Registry     *prediction.Registry
	TripRepo     repository.TripRepository
	ArtifactRepo repository.ModelArtifactRepository
	Mirror       repository.ModelArtifactRepository `name:"modelMirror" optional:"true"`
	Fitter       service.RegressorFitter
	Codec        service.ModelCodec
	Config       *config.Config
	Logger       *slog.Logger
}

// NewTrainingService is the constructor for trainingService.
func NewTrainingService(params TrainingServiceParams) usecase.TrainingUsecase {
	return &trainingService{
		registry:     params.Registry,
		tripRepo:     params.TripRepo,
		artifactRepo: params.ArtifactRepo,
		mirror:       params.Mirror,
		fitter:       params.Fitter,
		codec:        params.Codec,
		artifactName: params.Config.Model.ArtifactName,
		minTrips:     params.Config.Training.MinTrips,
		maxTrips:     params.Config.Training.MaxTrips,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *trainingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TrainFromHistory trains on up to maxTrips of the newest stored trips.
func (srv *trainingService) TrainFromHistory(ctx context.Context) (*entity.TrainingReport, error) {
	trips, err := srv.tripRepo.ListTrips(ctx, srv.maxTrips)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list trips for training")
	}

	return srv.Train(ctx, trips)
}

// Train fits, persists and then activates a new model.
// On any failure the previously active model stays in place.
func (srv *trainingService) Train(ctx context.Context, trips []*entity.Trip) (*entity.TrainingReport, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	started := srv.now()
	usable := usableTrips(trips)

	if len(usable) < srv.minTrips {
		message := fmt.Sprintf("Need at least %d trips to train. You have %d.", srv.minTrips, len(usable))
		metrics.TrainingRuns.WithLabelValues(metrics.OutcomeInsufficient).Inc()
		srv.log(ctx).Info("Training skipped", slog.Int("trips", len(usable)), slog.Int("min_trips", srv.minTrips))

		return &entity.TrainingReport{Success: false, Message: message, TripsCount: len(usable)},
			domainerrors.ErrInsufficientTrainingData.WithDetails(message)
	}

	model, mae, err := srv.fit(ctx, usable)
	if err != nil {
		return srv.failed(ctx, len(usable), err, domainerrors.ErrTrainingFailed)
	}

	payload, err := srv.codec.Encode(model)
	if err != nil {
		return srv.failed(ctx, len(usable), errors.Wrap(err, "encode model"), domainerrors.ErrTrainingFailed)
	}

	artifact := &entity.ModelArtifact{Name: srv.artifactName, Payload: payload, UpdatedAt: model.TrainedAt}
	if err := srv.artifactRepo.SaveArtifact(ctx, artifact); err != nil {
		return srv.failed(ctx, len(usable), errors.Wrap(err, "store model"), domainerrors.ErrModelPersistFailed)
	}

	if srv.mirror != nil {
		if err := srv.mirror.SaveArtifact(ctx, artifact); err != nil {
			srv.log(ctx).Warn("Model mirror write failed", slog.Any("error", err))
		}
	}

	srv.registry.Activate(model)

	elapsed := srv.now().Sub(started)
	metrics.TrainingRuns.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.TrainingDuration.Observe(elapsed.Seconds())
	metrics.ModelTrips.Set(float64(len(usable)))
	metrics.ModelMAE.Set(mae)

	srv.log(ctx).Info("Model trained",
		slog.Int("trips", len(usable)),
		slog.Float64("mae", mae),
		slog.Duration("elapsed", elapsed),
		slog.String("artifact_size", util.FormatBytes(int64(len(payload)))),
	)

	return &entity.TrainingReport{
		Success:           true,
		Message:           "Model trained successfully",
		TripsCount:        len(usable),
		MAE:               &mae,
		FeatureImportance: model.Importances(),
	}, nil
}

// fit builds the feature matrix and fits a regressor on the duration ratio.
func (srv *trainingService) fit(ctx context.Context, trips []*entity.Trip) (*prediction.LearnedModel, float64, error) {
	features := make([]prediction.Features, len(trips))
	withWeather := false
	for i, trip := range trips {
		features[i] = prediction.TripFeatures(trip)
		if trip.WeatherCondition != nil && *trip.WeatherCondition != "" {
			withWeather = true
		}
	}

	var encoder *prediction.LabelEncoder
	if withWeather {
		conditions := make([]string, len(features))
		for i, f := range features {
			conditions[i] = f.WeatherCondition
		}
		encoder = prediction.FitLabelEncoder(conditions)
	}

	x := make([][]float64, len(trips))
	y := make([]float64, len(trips))
	for i, trip := range trips {
		x[i] = prediction.Vector(features[i], encoder)
		y[i] = trip.DurationRatio()
	}

	regressor, err := srv.fitter.Fit(ctx, x, y)
	if err != nil {
		return nil, 0, errors.Wrap(err, "fit regressor")
	}

	mae, err := prediction.MeanAbsoluteError(regressor, x, y)
	if err != nil {
		return nil, 0, errors.Wrap(err, "evaluate regressor")
	}

	return &prediction.LearnedModel{
		Regressor:      regressor,
		WeatherEncoder: encoder,
		FeatureNames:   prediction.FeatureNames(encoder != nil),
		TrainedAt:      srv.now().UTC(),
		TripsCount:     len(trips),
	}, mae, nil
}

func (srv *trainingService) failed(ctx context.Context, tripsCount int, cause error, kind *domainerrors.BaseError) (*entity.TrainingReport, error) {
	message := "Training failed: " + cause.Error()
	metrics.TrainingRuns.WithLabelValues(metrics.OutcomeFailed).Inc()
	srv.log(ctx).Error("Training failed", slog.Any("error", cause), slog.Int("trips", tripsCount))

	return &entity.TrainingReport{Success: false, Message: message, TripsCount: tripsCount}, kind.WithDetails(message)
}

// usableTrips drops records whose durations cannot form a ratio target.
func usableTrips(trips []*entity.Trip) []*entity.Trip {
	usable := make([]*entity.Trip, 0, len(trips))
	for _, trip := range trips {
		if trip == nil || trip.EstimatedDuration <= 0 || trip.ActualDuration <= 0 {
			continue
		}
		usable = append(usable, trip)
	}

	return usable
}

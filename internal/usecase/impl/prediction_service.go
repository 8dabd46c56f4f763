// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"routecast/config"
	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/lifecycle"
	"routecast/internal/domain/prediction"
	"routecast/internal/domain/repository"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/metrics"
	"routecast/internal/usecase"

	"go.uber.org/fx"
)

// predictionService implements the PredictionUsecase interface.
type predictionService struct {
	registry     *prediction.Registry
	heuristic    prediction.AdjustmentModel
	artifactRepo repository.ModelArtifactRepository
	mirror       repository.ModelArtifactRepository
	codec        service.ModelCodec
	artifactName string
	now          func() time.Time
	logger       *slog.Logger
}

// PredictionServiceParams holds dependencies for PredictionService, injected by Fx.
type PredictionServiceParams struct {
	fx.In

	Registry     *prediction.Registry
	ArtifactRepo repository.ModelArtifactRepository
	Mirror       repository.ModelArtifactRepository `name:"modelMirror" optional:"true"`
	Codec        service.ModelCodec
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPredictionService is the constructor for predictionService.
func NewPredictionService(params PredictionServiceParams) usecase.PredictionUsecase {
	return &predictionService{
		registry:     params.Registry,
		heuristic:    prediction.NewHeuristicModel(),
		artifactRepo: params.ArtifactRepo,
		mirror:       params.Mirror,
		codec:        params.Codec,
		artifactName: params.Config.Model.ArtifactName,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *predictionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Predict adjusts the base duration with the learned model when one is active, else with heuristics.
func (srv *predictionService) Predict(ctx context.Context, input *usecase.PredictInput) *entity.PredictionResult {
	now := srv.now()

	hour := now.Hour()
	if input.Hour != nil {
		hour = *input.Hour
	}

	dayOfWeek := entity.Weekday(now)
	if input.DayOfWeek != nil {
		dayOfWeek = *input.DayOfWeek
	}

	weather := input.WeatherCondition
	if weather == "" {
		weather = prediction.DefaultWeatherCondition
	}

	temperature := prediction.DefaultTemperature
	if input.Temperature != nil {
		temperature = *input.Temperature
	}

	adjustment := srv.adjust(ctx, prediction.Features{
		Distance:           input.Distance,
		BaseDuration:       input.BaseDuration,
		Hour:               hour,
		DayOfWeek:          dayOfWeek,
		IsWeekend:          entity.IsWeekendDay(dayOfWeek),
		IsHoliday:          input.IsHoliday,
		WeatherCondition:   weather,
		Temperature:        temperature,
		IncidentCount:      input.IncidentCount,
		IncidentSeverities: input.IncidentSeverities,
	})

	return &entity.PredictionResult{
		PredictedDuration: input.BaseDuration * adjustment.Factor,
		BaseDuration:      input.BaseDuration,
		AdjustmentFactor:  adjustment.Factor,
		Confidence:        adjustment.Confidence,
		Factors:           adjustment.Contributions,
	}
}

func (srv *predictionService) adjust(ctx context.Context, features prediction.Features) prediction.Adjustment {
	if learned := srv.registry.Active(); learned != nil {
		adjustment, err := learned.ComputeFactor(features)
		if err == nil {
			metrics.PredictionsTotal.WithLabelValues(string(prediction.KindLearned)).Inc()

			return adjustment
		}

		metrics.PredictionFallbacks.Inc()
		srv.log(ctx).Warn("Learned model failed, using heuristics", slog.Any("error", err))
	}

	// The heuristic is total over its inputs.
	adjustment, _ := srv.heuristic.ComputeFactor(features)
	metrics.PredictionsTotal.WithLabelValues(string(prediction.KindHeuristic)).Inc()

	return adjustment
}

// ReloadModel activates the stored artifact, reading the database first and the mirror second.
func (srv *predictionService) ReloadModel(ctx context.Context) error {
	var errs []error

	for _, source := range srv.artifactSources() {
		artifact, err := source.repo.FindArtifact(ctx, srv.artifactName)
		if errors.Is(err, repository.ErrArtifactNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "read model from %s", source.name))

			continue
		}

		model, err := srv.codec.Decode(artifact.Payload)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "decode model from %s", source.name))

			continue
		}

		srv.registry.Activate(model)
		metrics.ModelTrips.Set(float64(model.TripsCount))
		srv.log(ctx).Info("Learned model loaded",
			slog.String("source", source.name),
			slog.Int("trips", model.TripsCount),
			slog.Time("trained_at", model.TrainedAt),
		)

		return nil
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	srv.log(ctx).Info("No stored model found, predictions use heuristics")

	return nil
}

type artifactSource struct {
	name string
	repo repository.ModelArtifactRepository
}

func (srv *predictionService) artifactSources() []artifactSource {
	sources := []artifactSource{{name: "database", repo: srv.artifactRepo}}
	if srv.mirror != nil {
		sources = append(sources, artifactSource{name: "mirror", repo: srv.mirror})
	}

	return sources
}

// IsTrained reports whether a learned model is active.
func (srv *predictionService) IsTrained() bool {
	return srv.registry.Active() != nil
}

// TrainedAt returns the fit time of the active model.
func (srv *predictionService) TrainedAt() (time.Time, bool) {
	model := srv.registry.Active()
	if model == nil {
		return time.Time{}, false
	}

	return model.TrainedAt, true
}

// LoadModelOnStart loads the stored model when the app starts.
// Failures are logged and the process keeps serving heuristics.
func LoadModelOnStart(lc fx.Lifecycle, predictions usecase.PredictionUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := predictions.ReloadModel(ctx); err != nil {
				logger.Warn("Stored model unavailable, starting with heuristics", slog.Any("error", err))
			}

			return nil
		},
	})
}

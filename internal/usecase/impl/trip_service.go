package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"routecast/config"
	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/repository"
	"routecast/internal/domain/service"
	"routecast/internal/geo"
	"routecast/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultTripListLimit   = 100
	similarTripsScanLimit  = 500
	defaultSimilarRadiusKm = 1.0
	defaultSimilarLimit    = 50
)

// tripService implements the TripUsecase interface.
type tripService struct {
	tripRepo    repository.TripRepository
	calendar    service.HolidayCalendar
	publisher   service.EventPublisher
	predictions usecase.PredictionUsecase
	minTrips    int
	now         func() time.Time
	logger      *slog.Logger
}

// TripServiceParams holds dependencies for TripService, injected by Fx.
type TripServiceParams struct {
	fx.In

	TripRepo    repository.TripRepository
	Calendar    service.HolidayCalendar
	Publisher   service.EventPublisher
	Predictions usecase.PredictionUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewTripService is the constructor for tripService.
func NewTripService(params TripServiceParams) usecase.TripUsecase {
	return &tripService{
		tripRepo:    params.TripRepo,
		calendar:    params.Calendar,
		publisher:   params.Publisher,
		predictions: params.Predictions,
		minTrips:    params.Config.Training.MinTrips,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tripService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordTrip stamps the time context onto a completed trip and stores it.
// Hour and weekday use the same wall clock as predictions.
func (srv *tripService) RecordTrip(ctx context.Context, input *usecase.RecordTripInput) (*entity.Trip, error) {
	if input.EstimatedDuration <= 0 || input.ActualDuration <= 0 {
		return nil, domainerrors.ErrInvalidTrip
	}
	if !input.Start.IsValid() || !input.End.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	now := srv.now()
	dayOfWeek := entity.Weekday(now)
	incidentTypes := input.IncidentTypes
	if incidentTypes == nil {
		incidentTypes = []string{}
	}

	trip := &entity.Trip{
		ID:                uuid.New(),
		Start:             input.Start,
		End:               input.End,
		StartName:         input.StartName,
		EndName:           input.EndName,
		Distance:          input.Distance,
		EstimatedDuration: input.EstimatedDuration,
		ActualDuration:    input.ActualDuration,
		Hour:              now.Hour(),
		DayOfWeek:         dayOfWeek,
		IsWeekend:         entity.IsWeekendDay(dayOfWeek),
		IsHoliday:         srv.calendar.IsHoliday(now),
		WeatherCondition:  input.WeatherCondition,
		Temperature:       input.Temperature,
		HadIncidents:      input.HadIncidents,
		IncidentTypes:     incidentTypes,
		CreatedAt:         now.UTC(),
	}
	trip.TrafficIntensity = trip.DurationRatio()

	if err := srv.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create trip")
	}

	srv.log(ctx).Info("Trip recorded",
		slog.String("trip_id", trip.ID.String()),
		slog.Float64("traffic_intensity", trip.TrafficIntensity),
	)
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventTripRecorded, trip.ID.String(), map[string]any{
		"traffic_intensity": trip.TrafficIntensity,
	})

	return trip, nil
}

// ListTrips returns the newest trips.
func (srv *tripService) ListTrips(ctx context.Context, limit int) ([]*entity.Trip, error) {
	if limit <= 0 {
		limit = defaultTripListLimit
	}

	trips, err := srv.tripRepo.ListTrips(ctx, limit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list trips")
	}

	return trips, nil
}

// CountTrips reports how many trips exist and whether training can run.
func (srv *tripService) CountTrips(ctx context.Context) (*usecase.TripCount, error) {
	count, err := srv.tripRepo.CountTrips(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "count trips")
	}

	ready := count >= int64(srv.minTrips)
	message := fmt.Sprintf("You have %d trips recorded. ", count)
	if ready {
		message += "You can train the model!"
	} else {
		message += fmt.Sprintf("You need %d more to train.", int64(srv.minTrips)-count)
	}

	return &usecase.TripCount{Count: count, ReadyForTraining: ready, Message: message}, nil
}

// SimilarTrips scans recent trips for ones starting and ending near the query points.
func (srv *tripService) SimilarTrips(ctx context.Context, query *usecase.SimilarTripsQuery) ([]*entity.Trip, error) {
	radius := query.RadiusKm
	if radius <= 0 {
		radius = defaultSimilarRadiusKm
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	trips, err := srv.tripRepo.ListTrips(ctx, similarTripsScanLimit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list trips")
	}

	similar := make([]*entity.Trip, 0)
	for _, trip := range trips {
		if !geo.Within(query.Start, trip.Start, radius) || !geo.Within(query.End, trip.End, radius) {
			continue
		}

		similar = append(similar, trip)
		if len(similar) >= limit {
			break
		}
	}

	return similar, nil
}

// ModelStatus reports which prediction path is in use.
func (srv *tripService) ModelStatus(ctx context.Context) (*entity.ModelStatus, error) {
	count, err := srv.tripRepo.CountTrips(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "count trips")
	}

	status := &entity.ModelStatus{
		IsTrained:        srv.predictions.IsTrained(),
		TripsCount:       count,
		ReadyForTraining: count >= int64(srv.minTrips),
	}
	status.UsingHeuristics = !status.IsTrained

	if trainedAt, ok := srv.predictions.TrainedAt(); ok {
		status.Message = "Learned model active"
		status.TrainedAt = trainedAt.UTC().Format(time.RFC3339)
	} else {
		status.Message = "Using heuristics (train the model for better predictions)"
	}

	return status, nil
}

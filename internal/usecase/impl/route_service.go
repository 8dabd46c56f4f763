package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/usecase"

	"go.uber.org/fx"
)

const maxCorrelationWorkers = 4

// routeService implements the RouteUsecase interface.
type routeService struct {
	provider    service.RoutingProvider
	weather     usecase.WeatherUsecase
	incidents   usecase.IncidentUsecase
	predictions usecase.PredictionUsecase
	holidays    service.HolidayCalendar
	now         func() time.Time
	logger      *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	Provider    service.RoutingProvider
	Weather     usecase.WeatherUsecase
	Incidents   usecase.IncidentUsecase
	Predictions usecase.PredictionUsecase
	Holidays    service.HolidayCalendar
	Logger      *slog.Logger
}

// NewRouteService is the constructor for routeService.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	return &routeService{
		provider:    params.Provider,
		weather:     params.Weather,
		incidents:   params.Incidents,
		predictions: params.Predictions,
		holidays:    params.Holidays,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProviderName identifies the routing engine in use.
func (srv *routeService) ProviderName() string {
	return srv.provider.Name()
}

// CalculateRoute predicts the duration of the main route.
func (srv *routeService) CalculateRoute(ctx context.Context, req *usecase.RouteRequest) (*usecase.RoutePrediction, error) {
	routes, err := srv.routes(ctx, req)
	if err != nil {
		return nil, err
	}

	main := routes[0]
	weather := srv.weather.CurrentWeather(ctx, req.Start)
	incidents := srv.correlate(ctx, main)

	return &usecase.RoutePrediction{
		Route:      main,
		Weather:    weather,
		Incidents:  incidents,
		Prediction: srv.predict(ctx, req, main, weather, incidents),
	}, nil
}

// AlternativeRoutes predicts every route the engine returns and ranks them fastest first.
func (srv *routeService) AlternativeRoutes(ctx context.Context, req *usecase.RouteRequest) (*usecase.RouteAlternatives, error) {
	routes, err := srv.routes(ctx, req)
	if err != nil {
		return nil, err
	}

	weather := srv.weather.CurrentWeather(ctx, req.Start)
	incidentsPerRoute := srv.correlateAll(ctx, routes)

	options := make([]*usecase.RouteOption, len(routes))
	for i, route := range routes {
		options[i] = &usecase.RouteOption{
			Index:      i,
			IsMain:     i == 0,
			Route:      route,
			Incidents:  incidentsPerRoute[i],
			Prediction: srv.predict(ctx, req, route, weather, incidentsPerRoute[i]),
		}
	}

	slices.SortStableFunc(options, func(a, b *usecase.RouteOption) int {
		switch {
		case a.Prediction.PredictedDuration < b.Prediction.PredictedDuration:
			return -1
		case a.Prediction.PredictedDuration > b.Prediction.PredictedDuration:
			return 1
		default:
			return 0
		}
	})

	return &usecase.RouteAlternatives{
		Weather:          weather,
		Options:          options,
		RecommendedIndex: options[0].Index,
	}, nil
}

// routes asks the engine for routes; every failure is reported as no route available.
func (srv *routeService) routes(ctx context.Context, req *usecase.RouteRequest) ([]*entity.RoutePolyline, error) {
	if !req.Start.IsValid() || !req.End.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	routes, err := srv.provider.Routes(ctx, req.Start, req.End)
	if err != nil {
		if errors.Is(err, service.ErrNoRoute) {
			return nil, domainerrors.ErrNoRouteAvailable
		}

		srv.log(ctx).Error("Routing engine failed",
			slog.String("provider", srv.provider.Name()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrNoRouteAvailable.WithDetails("routing engine unavailable")
	}
	if len(routes) == 0 {
		return nil, domainerrors.ErrNoRouteAvailable
	}

	return routes, nil
}

// correlate degrades to no incidents when the store is unreachable.
func (srv *routeService) correlate(ctx context.Context, route *entity.RoutePolyline) []*entity.Incident {
	incidents, err := srv.incidents.IncidentsOnRoute(ctx, route, 0)
	if err != nil {
		srv.log(ctx).Warn("Incident correlation failed, predicting without incidents", slog.Any("error", err))

		return []*entity.Incident{}
	}

	return incidents
}

type correlationResult struct {
	index     int
	incidents []*entity.Incident
}

// correlateAll fans the routes out to a small worker pool and keeps results in route order.
func (srv *routeService) correlateAll(ctx context.Context, routes []*entity.RoutePolyline) [][]*entity.Incident {
	results := make([][]*entity.Incident, len(routes))
	workerCount := min(len(routes), maxCorrelationWorkers)

	routeCh := make(chan int)
	resultCh := make(chan correlationResult, len(routes))

	var workerGroup sync.WaitGroup
	for range workerCount {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range routeCh {
				resultCh <- correlationResult{index: idx, incidents: srv.correlate(ctx, routes[idx])}
			}
		}()
	}

	go func() {
		defer close(routeCh)
		for i := range routes {
			routeCh <- i
		}
	}()

	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		results[res.index] = res.incidents
	}

	return results
}

func (srv *routeService) predict(
	ctx context.Context,
	req *usecase.RouteRequest,
	route *entity.RoutePolyline,
	weather *entity.WeatherSnapshot,
	incidents []*entity.Incident,
) *entity.PredictionResult {
	severities := make([]string, len(incidents))
	for i, incident := range incidents {
		severities[i] = string(incident.Severity)
	}

	// An overridden weekday has no calendar date to look up.
	isHoliday := false
	if req.DayOfWeek == nil {
		isHoliday = srv.holidays.IsHoliday(srv.now())
	}

	return srv.predictions.Predict(ctx, &usecase.PredictInput{
		BaseDuration:       route.BaseDuration,
		Distance:           route.Distance,
		WeatherCondition:   string(weather.Condition),
		Temperature:        &weather.Temperature,
		Hour:               req.Hour,
		DayOfWeek:          req.DayOfWeek,
		IsHoliday:          isHoliday,
		IncidentCount:      len(incidents),
		IncidentSeverities: severities,
	})
}

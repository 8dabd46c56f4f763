package impl

import (
	"context"
	"testing"
	"time"

	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	mockService "routecast/internal/mocks/service"
	mockUsecase "routecast/internal/mocks/usecase"
	"routecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeServiceFixtures struct {
	service     *routeService
	provider    *mockService.MockRoutingProvider
	weather     *mockUsecase.MockWeatherUsecase
	incidents   *mockUsecase.MockIncidentUsecase
	predictions *mockUsecase.MockPredictionUsecase
	holidays    *mockService.MockHolidayCalendar
}

var routeTestNow = time.Date(2026, 10, 16, 7, 45, 0, 0, time.UTC)

func createTestRouteService(t *testing.T) routeServiceFixtures {
	provider := mockService.NewMockRoutingProvider(t)
	weather := mockUsecase.NewMockWeatherUsecase(t)
	incidents := mockUsecase.NewMockIncidentUsecase(t)
	predictions := mockUsecase.NewMockPredictionUsecase(t)
	holidays := mockService.NewMockHolidayCalendar(t)

	srv := NewRouteService(RouteServiceParams{
		Provider:    provider,
		Weather:     weather,
		Incidents:   incidents,
		Predictions: predictions,
		Holidays:    holidays,
		Logger:      testLogger(),
	}).(*routeService)
	srv.now = fixedClock(routeTestNow)

	return routeServiceFixtures{
		service:     srv,
		provider:    provider,
		weather:     weather,
		incidents:   incidents,
		predictions: predictions,
		holidays:    holidays,
	}
}

func testRouteRequest() *usecase.RouteRequest {
	return &usecase.RouteRequest{
		Start: entity.GeoPoint{Lat: 8.98, Lng: -79.52},
		End:   entity.GeoPoint{Lat: 9.05, Lng: -79.45},
	}
}

func testPolyline(distance, duration float64) *entity.RoutePolyline {
	return &entity.RoutePolyline{
		Path:         orb.LineString{{-79.52, 8.98}, {-79.45, 9.05}},
		Distance:     distance,
		BaseDuration: duration,
	}
}

// scalePrediction multiplies the base duration by factor.
func scalePrediction(factor float64) func(context.Context, *usecase.PredictInput) *entity.PredictionResult {
	return func(_ context.Context, input *usecase.PredictInput) *entity.PredictionResult {
		return &entity.PredictionResult{
			PredictedDuration: input.BaseDuration * factor,
			BaseDuration:      input.BaseDuration,
			AdjustmentFactor:  factor,
			Confidence:        0.5,
		}
	}
}

func TestRouteService_CalculateRoute(t *testing.T) {
	fx := createTestRouteService(t)
	ctx := context.Background()
	req := testRouteRequest()
	req.Hour = intPtr(17)
	main := testPolyline(12000, 900)
	weather := &entity.WeatherSnapshot{Condition: entity.WeatherRain, Temperature: 26}
	incidents := []*entity.Incident{
		{ID: uuid.New(), Severity: entity.SeverityCritical},
		{ID: uuid.New(), Severity: entity.SeverityHigh},
	}

	fx.provider.EXPECT().Routes(ctx, req.Start, req.End).Return([]*entity.RoutePolyline{main, testPolyline(15000, 1000)}, nil)
	fx.weather.EXPECT().CurrentWeather(ctx, req.Start).Return(weather)
	fx.incidents.EXPECT().IncidentsOnRoute(ctx, main, 0.0).Return(incidents, nil)
	fx.holidays.EXPECT().IsHoliday(routeTestNow).Return(false)
	fx.predictions.EXPECT().Predict(ctx, mock.MatchedBy(func(in *usecase.PredictInput) bool {
		return in.BaseDuration == 900 &&
			in.Distance == 12000 &&
			in.WeatherCondition == "rain" &&
			in.Temperature != nil && *in.Temperature == 26 &&
			*in.Hour == 17 &&
			in.DayOfWeek == nil &&
			in.IncidentCount == 2 &&
			assert.ObjectsAreEqual([]string{"critical", "high"}, in.IncidentSeverities)
	})).RunAndReturn(scalePrediction(1.5))

	result, err := fx.service.CalculateRoute(ctx, req)

	require.NoError(t, err)
	assert.Same(t, main, result.Route)
	assert.Same(t, weather, result.Weather)
	assert.Equal(t, incidents, result.Incidents)
	assert.InDelta(t, 1350, result.Prediction.PredictedDuration, 1e-9)
}

func TestRouteService_CalculateRoute_DegradesWhenIncidentsFail(t *testing.T) {
	fx := createTestRouteService(t)
	ctx := context.Background()
	req := testRouteRequest()
	main := testPolyline(12000, 900)

	fx.provider.EXPECT().Routes(ctx, req.Start, req.End).Return([]*entity.RoutePolyline{main}, nil)
	fx.weather.EXPECT().CurrentWeather(ctx, req.Start).Return(entity.NeutralWeather())
	fx.incidents.EXPECT().IncidentsOnRoute(ctx, main, 0.0).Return(nil, errors.New("db down"))
	fx.holidays.EXPECT().IsHoliday(routeTestNow).Return(true)
	fx.predictions.EXPECT().Predict(ctx, mock.MatchedBy(func(in *usecase.PredictInput) bool {
		return in.IncidentCount == 0 && in.IsHoliday
	})).RunAndReturn(scalePrediction(1.0))

	result, err := fx.service.CalculateRoute(ctx, req)

	require.NoError(t, err)
	assert.Empty(t, result.Incidents)
}

func TestRouteService_CalculateRoute_WeekdayOverrideSkipsHolidayLookup(t *testing.T) {
	fx := createTestRouteService(t)
	ctx := context.Background()
	req := testRouteRequest()
	req.Hour = intPtr(9)
	req.DayOfWeek = intPtr(6)
	main := testPolyline(12000, 900)

	fx.provider.EXPECT().Routes(ctx, req.Start, req.End).Return([]*entity.RoutePolyline{main}, nil)
	fx.weather.EXPECT().CurrentWeather(ctx, req.Start).Return(entity.NeutralWeather())
	fx.incidents.EXPECT().IncidentsOnRoute(ctx, main, 0.0).Return(nil, nil)
	// No IsHoliday expectation: the mock fails the test if it is consulted.
	fx.predictions.EXPECT().Predict(ctx, mock.MatchedBy(func(in *usecase.PredictInput) bool {
		return *in.DayOfWeek == 6 && *in.Hour == 9 && !in.IsHoliday
	})).RunAndReturn(scalePrediction(1.0))

	result, err := fx.service.CalculateRoute(ctx, req)

	require.NoError(t, err)
	assert.InDelta(t, 900, result.Prediction.PredictedDuration, 1e-9)
}

func TestRouteService_CalculateRoute_RoutingFailures(t *testing.T) {
	tests := []struct {
		name   string
		routes []*entity.RoutePolyline
		err    error
	}{
		{name: "no route", err: service.ErrNoRoute},
		{name: "engine down", err: errors.New("dial tcp: connection refused")},
		{name: "empty answer", routes: []*entity.RoutePolyline{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouteService(t)
			ctx := context.Background()
			req := testRouteRequest()

			fx.provider.EXPECT().Routes(ctx, req.Start, req.End).Return(tt.routes, tt.err)
			fx.provider.EXPECT().Name().Return("osrm").Maybe()

			_, err := fx.service.CalculateRoute(ctx, req)

			assert.True(t, errors.Is(err, domainerrors.ErrNoRouteAvailable), "got %v", err)
		})
	}
}

func TestRouteService_CalculateRoute_InvalidCoordinate(t *testing.T) {
	fx := createTestRouteService(t)
	req := testRouteRequest()
	req.End = entity.GeoPoint{Lat: -95, Lng: 0}

	_, err := fx.service.CalculateRoute(context.Background(), req)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinate))
}

func TestRouteService_AlternativeRoutes_SortedByPrediction(t *testing.T) {
	fx := createTestRouteService(t)
	ctx := context.Background()
	req := testRouteRequest()

	main := testPolyline(12000, 900)
	shortcut := testPolyline(11000, 1000)
	detour := testPolyline(16000, 1100)
	crash := &entity.Incident{ID: uuid.New(), Severity: entity.SeverityCritical}

	fx.provider.EXPECT().Routes(ctx, req.Start, req.End).Return([]*entity.RoutePolyline{main, shortcut, detour}, nil)
	fx.weather.EXPECT().CurrentWeather(ctx, req.Start).Return(entity.NeutralWeather())
	fx.holidays.EXPECT().IsHoliday(routeTestNow).Return(false)
	fx.incidents.EXPECT().IncidentsOnRoute(ctx, main, 0.0).Return([]*entity.Incident{crash}, nil)
	fx.incidents.EXPECT().IncidentsOnRoute(ctx, shortcut, 0.0).Return([]*entity.Incident{}, nil)
	fx.incidents.EXPECT().IncidentsOnRoute(ctx, detour, 0.0).Return([]*entity.Incident{}, nil)

	// Incidents double the duration; clear routes keep it.
	fx.predictions.EXPECT().Predict(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, in *usecase.PredictInput) *entity.PredictionResult {
			if in.IncidentCount > 0 {
				return scalePrediction(2.0)(ctx, in)
			}

			return scalePrediction(1.0)(ctx, in)
		})

	result, err := fx.service.AlternativeRoutes(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Options, 3)
	assert.Equal(t, 1, result.RecommendedIndex)

	assert.Equal(t, []int{1, 2, 0}, []int{result.Options[0].Index, result.Options[1].Index, result.Options[2].Index})
	assert.False(t, result.Options[0].IsMain)
	assert.True(t, result.Options[2].IsMain)
	assert.Len(t, result.Options[2].Incidents, 1)
	assert.InDelta(t, 1800, result.Options[2].Prediction.PredictedDuration, 1e-9)
}

func TestRouteService_ProviderName(t *testing.T) {
	fx := createTestRouteService(t)
	fx.provider.EXPECT().Name().Return("pmtiles")

	assert.Equal(t, "pmtiles", fx.service.ProviderName())
}

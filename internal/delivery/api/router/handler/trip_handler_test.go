package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	mockUsecase "routecast/internal/mocks/usecase"
	"routecast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripTestServer struct {
	e            *echo.Echo
	tripUC       *mockUsecase.MockTripUsecase
	trainingUC   *mockUsecase.MockTrainingUsecase
	predictionUC *mockUsecase.MockPredictionUsecase
}

func newTripTestServer(t *testing.T) tripTestServer {
	s := tripTestServer{
		e:            newTestEcho(),
		tripUC:       mockUsecase.NewMockTripUsecase(t),
		trainingUC:   mockUsecase.NewMockTrainingUsecase(t),
		predictionUC: mockUsecase.NewMockPredictionUsecase(t),
	}
	h := NewTripHandler(TripHandlerParams{
		TripUC:       s.tripUC,
		TrainingUC:   s.trainingUC,
		PredictionUC: s.predictionUC,
		Logger:       slog.Default(),
	})

	s.e.POST("/trips", h.RecordTrip)
	s.e.GET("/trips", h.ListTrips)
	s.e.GET("/trips/count", h.CountTrips)
	s.e.GET("/trips/similar", h.SimilarTrips)
	s.e.POST("/trips/train", h.TrainModel)
	s.e.GET("/trips/model-status", h.ModelStatus)
	s.e.POST("/trips/model/reload", h.ReloadModel)

	return s
}

func TestTripHandler_RecordTrip(t *testing.T) {
	s := newTripTestServer(t)
	s.tripUC.EXPECT().
		RecordTrip(mock.Anything, mock.MatchedBy(func(input *usecase.RecordTripInput) bool {
			return input.ActualDuration == 900 && *input.WeatherCondition == "rain" && input.HadIncidents
		})).
		Return(&entity.Trip{ActualDuration: 900, EstimatedDuration: 600, TrafficIntensity: 1.5}, nil)

	rec := doRequest(s.e, http.MethodPost, "/trips", map[string]any{
		"start":              map[string]float64{"lat": 8.98, "lng": -79.52},
		"end":                map[string]float64{"lat": 9.0, "lng": -79.5},
		"distance":           4200,
		"estimated_duration": 600,
		"actual_duration":    900,
		"weather_condition":  "rain",
		"had_incidents":      true,
		"incident_types":     []string{"accident"},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var trip entity.Trip
	decodeData(t, rec, &trip)
	assert.Equal(t, 1.5, trip.TrafficIntensity)
}

func TestTripHandler_RecordTrip_RejectsNonPositiveDurations(t *testing.T) {
	s := newTripTestServer(t)

	rec := doRequest(s.e, http.MethodPost, "/trips", map[string]any{
		"start":              map[string]float64{"lat": 8.98, "lng": -79.52},
		"end":                map[string]float64{"lat": 9.0, "lng": -79.5},
		"estimated_duration": 0,
		"actual_duration":    900,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestTripHandler_ListTrips(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		expectedLimit int
	}{
		{name: "default limit", target: "/trips", expectedLimit: 100},
		{name: "explicit limit", target: "/trips?limit=20", expectedLimit: 20},
		{name: "capped limit", target: "/trips?limit=50000", expectedLimit: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTripTestServer(t)
			s.tripUC.EXPECT().ListTrips(mock.Anything, tt.expectedLimit).Return([]*entity.Trip{{}}, nil)

			rec := doRequest(s.e, http.MethodGet, tt.target, nil)

			require.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("invalid limit", func(t *testing.T) {
		s := newTripTestServer(t)

		rec := doRequest(s.e, http.MethodGet, "/trips?limit=0", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTripHandler_CountTrips(t *testing.T) {
	s := newTripTestServer(t)
	s.tripUC.EXPECT().CountTrips(mock.Anything).
		Return(&usecase.TripCount{Count: 4, Message: "Need 6 more trips"}, nil)

	rec := doRequest(s.e, http.MethodGet, "/trips/count", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var count usecase.TripCount
	decodeData(t, rec, &count)
	assert.Equal(t, int64(4), count.Count)
	assert.False(t, count.ReadyForTraining)
}

func TestTripHandler_SimilarTrips(t *testing.T) {
	s := newTripTestServer(t)
	s.tripUC.EXPECT().
		SimilarTrips(mock.Anything, &usecase.SimilarTripsQuery{
			Start:    entity.GeoPoint{Lat: 8.98, Lng: -79.52},
			End:      entity.GeoPoint{Lat: 9, Lng: -79.5},
			RadiusKm: 1,
			Limit:    50,
		}).
		Return(nil, nil)

	rec := doRequest(s.e, http.MethodGet, "/trips/similar?start_lat=8.98&start_lng=-79.52&end_lat=9&end_lng=-79.5", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, "[]", string(decodeEnvelope(t, rec).Data))
}

func TestTripHandler_SimilarTrips_MissingCoordinate(t *testing.T) {
	s := newTripTestServer(t)

	rec := doRequest(s.e, http.MethodGet, "/trips/similar?start_lat=8.98&start_lng=-79.52&end_lat=9", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTripHandler_TrainModel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTripTestServer(t)
		mae := 0.04
		s.trainingUC.EXPECT().TrainFromHistory(mock.Anything).Return(&entity.TrainingReport{
			Success:    true,
			Message:    "Model trained successfully",
			TripsCount: 25,
			MAE:        &mae,
		}, nil)

		rec := doRequest(s.e, http.MethodPost, "/trips/train", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var report entity.TrainingReport
		decodeData(t, rec, &report)
		assert.True(t, report.Success)
		assert.Equal(t, 25, report.TripsCount)
	})

	t.Run("insufficient data", func(t *testing.T) {
		s := newTripTestServer(t)
		message := "Need at least 10 trips to train. You have 3."
		s.trainingUC.EXPECT().TrainFromHistory(mock.Anything).Return(
			&entity.TrainingReport{Message: message, TripsCount: 3},
			domainerrors.ErrInsufficientTrainingData.WithDetails(message),
		)

		rec := doRequest(s.e, http.MethodPost, "/trips/train", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INSUFFICIENT_TRAINING_DATA", env.Error.Code)
		assert.Equal(t, message, env.Error.Details)
	})
}

func TestTripHandler_ModelStatus(t *testing.T) {
	s := newTripTestServer(t)
	s.tripUC.EXPECT().ModelStatus(mock.Anything).Return(&entity.ModelStatus{
		TripsCount:      3,
		UsingHeuristics: true,
	}, nil)

	rec := doRequest(s.e, http.MethodGet, "/trips/model-status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var status entity.ModelStatus
	decodeData(t, rec, &status)
	assert.True(t, status.UsingHeuristics)
}

func TestTripHandler_ReloadModel(t *testing.T) {
	s := newTripTestServer(t)
	s.predictionUC.EXPECT().ReloadModel(mock.Anything).Return(nil)
	s.tripUC.EXPECT().ModelStatus(mock.Anything).Return(&entity.ModelStatus{IsTrained: true, TripsCount: 40}, nil)

	rec := doRequest(s.e, http.MethodPost, "/trips/model/reload", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var status entity.ModelStatus
	decodeData(t, rec, &status)
	assert.True(t, status.IsTrained)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"routecast/config"
	"routecast/internal/domain/constants"
	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/infra/pubsub"
	mockRepo "routecast/internal/mocks/repository"
	mockUsecase "routecast/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig(provider, env string) *config.Config {
	cfg := &config.Config{
		PubSub:   &config.PubSubConfig{Provider: provider},
		Training: &config.TrainingConfig{MinTrips: 10, RetrainEvery: 5},
	}
	cfg.Env.Env = env

	return cfg
}

func newTestHandler(t *testing.T) (*PushHandler, *mockRepo.MockTripRepository, *mockUsecase.MockTrainingUsecase) {
	tripRepo := mockRepo.NewMockTripRepository(t)
	trainingUC := mockUsecase.NewMockTrainingUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config:     newTestConfig(constants.PubSubProviderLocal, constants.EnvDevelop),
		Logger:     slog.Default(),
		TripRepo:   tripRepo,
		TrainingUC: trainingUC,
	})

	return h, tripRepo, trainingUC
}

func pushRequest(t *testing.T, eventType string) *http.Request {
	msg, err := pubsub.NewPushMessage(&service.DomainEvent{
		EventID:   "evt-1",
		Type:      eventType,
		RequestID: "req-1",
	}, "projects/local/subscriptions/routecast-events")
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func serve(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_TripRecorded(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		retrained bool
	}{
		{name: "below minimum", count: 5},
		{name: "not on cadence", count: 12},
		{name: "on cadence", count: 15, retrained: true},
		{name: "at minimum on cadence", count: 10, retrained: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, tripRepo, trainingUC := newTestHandler(t)
			tripRepo.EXPECT().CountTrips(mock.Anything).Return(tt.count, nil)
			if tt.retrained {
				trainingUC.EXPECT().TrainFromHistory(mock.Anything).
					Return(&entity.TrainingReport{Success: true, TripsCount: int(tt.count)}, nil)
			}

			rec := serve(h, pushRequest(t, service.EventTripRecorded))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_ModelRetrain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "success", expected: http.StatusOK},
		{name: "insufficient data is acknowledged", err: domainerrors.ErrInsufficientTrainingData.WithDetails("need 10"), expected: http.StatusOK},
		{name: "fit failure is acknowledged", err: domainerrors.ErrTrainingFailed, expected: http.StatusOK},
		{name: "persist failure is redelivered", err: domainerrors.ErrModelPersistFailed, expected: http.StatusServiceUnavailable},
		{name: "storage failure is redelivered", err: domainerrors.NewDatabaseExecuteError(errors.New("down"), "list trips"), expected: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, trainingUC := newTestHandler(t)
			report := &entity.TrainingReport{Success: tt.err == nil}
			trainingUC.EXPECT().TrainFromHistory(mock.Anything).
				RunAndReturn(func(ctx context.Context) (*entity.TrainingReport, error) {
					return report, tt.err
				})

			rec := serve(h, pushRequest(t, service.EventModelRetrain))

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestPushHandler_CountFailureIsRedelivered(t *testing.T) {
	h, tripRepo, _ := newTestHandler(t)
	tripRepo.EXPECT().CountTrips(mock.Anything).Return(0, errors.New("connection refused"))

	rec := serve(h, pushRequest(t, service.EventTripRecorded))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_IgnoresOtherEvents(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := serve(h, pushRequest(t, service.EventIncidentReported))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`},
		{name: "no event type", body: `{"message":{"data":"e30="}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler(t)
			req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewBufferString(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := serve(h, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesTokenOutsideDevelop(t *testing.T) {
	tripRepo := mockRepo.NewMockTripRepository(t)
	trainingUC := mockUsecase.NewMockTrainingUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     newTestConfig(constants.PubSubProviderGoogle, constants.EnvProduction),
		Logger:     slog.Default(),
		TripRepo:   tripRepo,
		TrainingUC: trainingUC,
	})
	require.True(t, h.verifyPushAuth)

	var audience string
	h.validateToken = func(_ context.Context, token, aud string) error {
		audience = aud
		if token != "good" {
			return errors.New("bad token")
		}

		return nil
	}

	rec := serve(h, pushRequest(t, service.EventIncidentDismissed))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := pushRequest(t, service.EventIncidentDismissed)
	req.Header.Set("Authorization", "Bearer bad")
	rec = serve(h, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = pushRequest(t, service.EventIncidentDismissed)
	req.Header.Set("Authorization", "Bearer good")
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com/push", audience)
}

func TestPushHandler_LocalProviderSkipsVerification(t *testing.T) {
	h, _, _ := newTestHandler(t)

	assert.False(t, h.verifyPushAuth)
}

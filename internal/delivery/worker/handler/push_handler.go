// Package handler processes Pub/Sub push deliveries for the training worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"routecast/config"
	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/constants"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/repository"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/infra/pubsub"
	"routecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks failures that Pub/Sub should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks the OIDC token Pub/Sub attaches to push requests.
type tokenValidator func(ctx context.Context, token, audience string) error

func validateIDToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}

// PushHandlerParams holds dependencies for the PushHandler.
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	TripRepo   repository.TripRepository
	TrainingUC usecase.TrainingUsecase
}

// PushHandler retrains the duration model in response to domain events.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	minTrips       int64
	retrainEvery   int64
	logger         *slog.Logger
	tripRepo       repository.TripRepository
	trainingUC     usecase.TrainingUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  validateIDToken,
		minTrips:       int64(params.Config.Training.MinTrips),
		retrainEvery:   int64(max(params.Config.Training.RetrainEvery, 1)),
		logger:         params.Logger,
		tripRepo:       params.TripRepo,
		trainingUC:     params.TrainingUC,
	}
}

// HandlePush answers 2xx to acknowledge, 503 to request redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var msg pubsub.PushMessage
	if err := c.Bind(&msg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := msg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode domain event",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.requestID(ctx, &msg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_type", event.Type),
		slog.String("event_id", event.EventID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.process(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) process(ctx context.Context, event *service.DomainEvent) error {
	switch event.Type {
	case service.EventTripRecorded:
		count, err := h.tripRepo.CountTrips(ctx)
		if err != nil {
			return newRetryableError(errors.Wrap(err, "count trips"))
		}
		if !h.shouldRetrain(count) {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("[Worker] Retrain not due", slog.Int64("trips", count))

			return nil
		}

		return h.retrain(ctx)
	case service.EventModelRetrain:
		return h.retrain(ctx)
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("[Worker] Ignoring event")

		return nil
	}
}

// shouldRetrain fires at every retrainEvery-th trip once minTrips exist.
func (h *PushHandler) shouldRetrain(count int64) bool {
	return count >= h.minTrips && count%h.retrainEvery == 0
}

func (h *PushHandler) retrain(ctx context.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	report, err := h.trainingUC.TrainFromHistory(ctx)
	switch {
	case err == nil:
		logger.Info("[Worker] Model retrained", slog.Int("trips", report.TripsCount))

		return nil
	case errors.IsAny(err, domainerrors.ErrInsufficientTrainingData, domainerrors.ErrTrainingFailed):
		logger.Warn("[Worker] Retrain skipped", slog.Any("error", err))

		return nil
	default:
		return newRetryableError(err)
	}
}

// requestID prefers message attributes, then the event, then the HTTP request.
func (h *PushHandler) requestID(ctx context.Context, msg *pubsub.PushMessage, event *service.DomainEvent) string {
	if id := msg.Message.Attributes["request_id"]; id != "" {
		return id
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.NewString()
}

// verifyToken validates the bearer token against the push endpoint URL as audience.
func (h *PushHandler) verifyToken(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing Authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return errors.New("invalid Authorization header format")
	}

	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "https"
		if r.TLS == nil {
			scheme = "http"
		}
	}
	audience := scheme + "://" + r.Host + r.URL.Path

	return h.validateToken(r.Context(), token, audience)
}

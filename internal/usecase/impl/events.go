package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent sends a domain event. Delivery is best effort: the caller's
// state change is already committed, so failures are logged and dropped.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType, aggregateID string, data map[string]any) {
	if publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.New().String(),
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Data:        data,
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("event_type", eventType),
			slog.String("aggregate_id", aggregateID),
			slog.Any("error", err),
		)
	}
}

package service

import (
	"context"
	"time"
)

// Event types published by the API and consumed by the training worker.
const (
	EventIncidentReported  = "incident.reported"
	EventIncidentConfirmed = "incident.confirmed"
	EventIncidentDismissed = "incident.dismissed"
	EventTripRecorded      = "trip.recorded"
	EventModelRetrain      = "model.retrain"
)

// DomainEvent is a fact about incidents, trips or the model, published for async consumers
type DomainEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	EventID     string         `json:"event_id"`
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregate_id,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Data        map[string]any `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for async processing
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

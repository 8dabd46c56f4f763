package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"routecast/config"
	"routecast/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.DomainEvent {
	return &service.DomainEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.EventTripRecorded,
		AggregateID: "trip-9",
		OccurredAt:  time.Date(2025, 5, 2, 7, 0, 0, 0, time.UTC),
		Data:        map[string]any{"actual_duration": 1320.0},
	}
}

func TestPushMessage_RoundTripEvent(t *testing.T) {
	msg, err := NewPushMessage(sampleEvent(), "sub")
	require.NoError(t, err)

	assert.Equal(t, "evt-1", msg.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_type":   service.EventTripRecorded,
		"event_id":     "evt-1",
		"aggregate_id": "trip-9",
		"request_id":   "req-1",
	}, msg.Message.Attributes)

	event, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "trip-9", event.AggregateID)
	assert.Equal(t, 1320.0, event.Data["actual_duration"])
}

func TestPushMessage_DecodeEventErrors(t *testing.T) {
	var msg PushMessage
	msg.Message.Data = "%%%"
	_, err := msg.DecodeEvent()
	assert.Error(t, err)

	msg.Message.Data = "e30=" // {}
	_, err = msg.DecodeEvent()
	assert.Error(t, err)

	msg.Message.Attributes = map[string]string{"event_type": service.EventModelRetrain}
	event, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, service.EventModelRetrain, event.Type)
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)

	event, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, service.EventTripRecorded, event.Type)
}

func TestLocalHTTPPublisher_NonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).Publish(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

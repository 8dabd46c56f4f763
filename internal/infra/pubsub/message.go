package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"routecast/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the envelope Pub/Sub posts to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Attributes lets subscriptions filter by event type without decoding the payload.
func Attributes(event *service.DomainEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"event_id":   event.EventID,
	}
	if event.AggregateID != "" {
		attributes["aggregate_id"] = event.AggregateID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps an event the same way Pub/Sub does for push delivery.
func NewPushMessage(event *service.DomainEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = Attributes(event)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent unwraps the domain event carried by a push message.
func (m *PushMessage) DecodeEvent() (*service.DomainEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse domain event")
	}
	if event.Type == "" {
		if event.Type = m.Message.Attributes["event_type"]; event.Type == "" {
			return nil, errors.New("event type is missing")
		}
	}

	return &event, nil
}

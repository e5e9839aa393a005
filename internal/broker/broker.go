// Package broker provides the shared fan-out channel for live chat
// traffic. One topic carries every room's messages plus alarm events;
// subscribers demultiplex on the event kind. Delivery is fire-and-forget,
// at-most-once: a listener that misses an event catches up from the
// durable message store.
package broker

import (
	"context"
	"encoding/json"

	"pairchat/backend/internal/models"
)

// DefaultTopic is the shared channel name used when none is configured.
const DefaultTopic = "chat:events"

// Event kinds carried on the shared topic.
const (
	KindMessage = "message"
	KindAlarm   = "alarm"
)

// Event is the kind-tagged envelope published on the shared topic. Payload
// is opaque to the broker.
type Event struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Broker publishes events to, and subscribes to, the single shared topic.
type Broker interface {
	// Publish sends one event to currently subscribed listeners. No
	// delivery guarantee to listeners connecting later, no backpressure.
	Publish(event Event) error
	// Subscribe returns a channel of incoming events plus a cancel
	// function releasing the subscription. The channel closes after
	// cancel or when ctx is done.
	Subscribe(ctx context.Context) (<-chan Event, func(), error)
}

// MessageEvent wraps a chat message DTO into an envelope.
func MessageEvent(msg models.ChatMessage) (Event, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return Event{}, err
	}
	return Event{Kind: KindMessage, Payload: payload}, nil
}

// AlarmEvent wraps an alarm DTO into an envelope.
func AlarmEvent(alarm models.AlarmMessage) (Event, error) {
	payload, err := json.Marshal(alarm)
	if err != nil {
		return Event{}, err
	}
	return Event{Kind: KindAlarm, Payload: payload}, nil
}

// DecodeMessage unpacks a KindMessage payload.
func DecodeMessage(event Event) (models.ChatMessage, error) {
	var msg models.ChatMessage
	err := json.Unmarshal(event.Payload, &msg)
	return msg, err
}

// DecodeAlarm unpacks a KindAlarm payload.
func DecodeAlarm(event Event) (models.AlarmMessage, error) {
	var alarm models.AlarmMessage
	err := json.Unmarshal(event.Payload, &alarm)
	return alarm, err
}

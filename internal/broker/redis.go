package broker

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisBroker fans events out over a Redis pub/sub channel.
type RedisBroker struct {
	client *redis.Client
	topic  string
	ctx    context.Context
}

// NewRedisBroker builds a broker on the given client and topic. An empty
// topic falls back to DefaultTopic.
func NewRedisBroker(client *redis.Client, topic string) *RedisBroker {
	if topic == "" {
		topic = DefaultTopic
	}
	return &RedisBroker{client: client, topic: topic, ctx: context.Background()}
}

// Publish sends the event to the shared channel.
func (b *RedisBroker) Publish(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(b.ctx, b.topic, data).Err()
}

// Subscribe opens a pub/sub subscription on the shared channel and decodes
// envelopes into the returned channel. Malformed payloads are logged and
// skipped.
func (b *RedisBroker) Subscribe(ctx context.Context) (<-chan Event, func(), error) {
	pubsub := b.client.Subscribe(ctx, b.topic)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, err
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("broker: dropping malformed event: %v", err)
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	cancel := func() {
		if err := pubsub.Close(); err != nil {
			log.Printf("broker: error closing subscription: %v", err)
		}
	}
	return events, cancel, nil
}

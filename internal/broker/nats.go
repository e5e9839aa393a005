package broker

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

// NATSBroker fans events out over a core NATS subject. Same at-most-once
// contract as the Redis broker; the subject doubles as the topic name.
type NATSBroker struct {
	conn    *nats.Conn
	subject string
}

// NewNATSBroker builds a broker on an established NATS connection.
func NewNATSBroker(conn *nats.Conn, subject string) *NATSBroker {
	if subject == "" {
		subject = DefaultTopic
	}
	return &NATSBroker{conn: conn, subject: subject}
}

// Publish sends the event to the shared subject.
func (b *NATSBroker) Publish(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.conn.Publish(b.subject, data)
}

// Subscribe delivers incoming envelopes until cancel or ctx expiry.
func (b *NATSBroker) Subscribe(ctx context.Context) (<-chan Event, func(), error) {
	msgs := make(chan *nats.Msg, 64)
	sub, err := b.conn.ChanSubscribe(b.subject, msgs)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal(msg.Data, &event); err != nil {
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
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("broker: error unsubscribing: %v", err)
		}
	}
	return events, cancel, nil
}

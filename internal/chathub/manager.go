// Package chathub manages live connections: it registers clients against
// their rooms, keeps the presence counters current, feeds incoming
// messages into the chat service and fans broker events back out to the
// subscribed connections.
package chathub

import (
	"context"
	"log"

	"pairchat/backend/internal/broker"
	"pairchat/backend/internal/models"
)

// MessageSender is the slice of the chat service the hub needs.
type MessageSender interface {
	SendChatMessage(dto models.ChatMessage) error
}

// Presence is the slice of the room cache the hub needs: the live
// participant counters it moves as connections come and go.
type Presence interface {
	AddRoomUser(roomID string) (int, error)
	RemoveRoomUser(roomID string) (int, error)
}

// ManagerService is the hub. All client-map access is serialized through
// the Run loop; the channels are the only way in.
type ManagerService struct {
	// Clients maps user id to live connection. One connection per user.
	Clients map[string]Client

	IncomingCh   chan models.ChatMessage
	RegisterCh   chan Client
	UnregisterCh chan Client

	Presence Presence
	Broker   broker.Broker
	Chat     MessageSender
}

// NewManagerService builds a hub over the given presence counters, broker
// and chat service.
func NewManagerService(p Presence, b broker.Broker, chat MessageSender) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		IncomingCh:   make(chan models.ChatMessage),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		Presence:     p,
		Broker:       b,
		Chat:         chat,
	}
}

// Run subscribes to the shared broker topic and dispatches until ctx is
// done.
func (m *ManagerService) Run(ctx context.Context) {
	events, cancel, err := m.Broker.Subscribe(ctx)
	if err != nil {
		log.Printf("hub: broker subscription failed: %v", err)
		return
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-m.RegisterCh:
			m.registerClient(client)

		case client := <-m.UnregisterCh:
			if current, ok := m.Clients[client.GetUserID()]; ok && current == client {
				m.removeClient(client)
			}

		case msg := <-m.IncomingCh:
			if err := m.Chat.SendChatMessage(msg); err != nil {
				log.Printf("hub: failed to handle message in room %s: %v", msg.RoomID, err)
			}

		case event, ok := <-events:
			if !ok {
				return
			}
			m.handleEvent(event)
		}
	}
}

// registerClient adds the connection, bumps the room's presence counter
// and announces the join. The counter moves before the announcement so
// the ENTER event already reflects the new participant.
func (m *ManagerService) registerClient(client Client) {
	if previous, ok := m.Clients[client.GetUserID()]; ok {
		m.removeClient(previous)
	}
	m.Clients[client.GetUserID()] = client

	if _, err := m.Presence.AddRoomUser(client.GetRoomID()); err != nil {
		log.Printf("hub: failed to bump presence for room %s: %v", client.GetRoomID(), err)
	}

	m.announce(models.MessageTypeEnter, client)
	log.Printf("hub: %s joined room %s", client.GetUserID(), client.GetRoomID())
}

// removeClient drops the connection, lowers the presence counter and
// announces the leave.
func (m *ManagerService) removeClient(client Client) {
	delete(m.Clients, client.GetUserID())
	client.Close()

	if _, err := m.Presence.RemoveRoomUser(client.GetRoomID()); err != nil {
		log.Printf("hub: failed to lower presence for room %s: %v", client.GetRoomID(), err)
	}

	m.announce(models.MessageTypeQuit, client)
	log.Printf("hub: %s left room %s", client.GetUserID(), client.GetRoomID())
}

func (m *ManagerService) announce(msgType models.MessageType, client Client) {
	err := m.Chat.SendChatMessage(models.ChatMessage{
		Type:     msgType,
		RoomID:   client.GetRoomID(),
		SenderID: client.GetUserID(),
		Sender:   client.GetNickname(),
	})
	if err != nil {
		log.Printf("hub: failed to announce %s for room %s: %v", msgType, client.GetRoomID(), err)
	}
}

// handleEvent demultiplexes one broker event: chat messages go to every
// connection subscribed to the room, alarms to the targeted user.
func (m *ManagerService) handleEvent(event broker.Event) {
	switch event.Kind {
	case broker.KindMessage:
		msg, err := broker.DecodeMessage(event)
		if err != nil {
			log.Printf("hub: dropping malformed message event: %v", err)
			return
		}
		for _, client := range m.Clients {
			if client.GetRoomID() == msg.RoomID {
				m.deliver(client, event)
			}
		}

	case broker.KindAlarm:
		alarm, err := broker.DecodeAlarm(event)
		if err != nil {
			log.Printf("hub: dropping malformed alarm event: %v", err)
			return
		}
		for _, client := range m.Clients {
			if client.GetUserID() == alarm.AlarmTargetID {
				m.deliver(client, event)
			}
		}

	default:
		log.Printf("hub: ignoring event of unknown kind %q", event.Kind)
	}
}

// deliver hands the event to one connection without blocking the hub. A
// connection too slow to drain its buffer is dropped; it catches up from
// the message store on reconnect.
func (m *ManagerService) deliver(client Client, event broker.Event) {
	select {
	case client.GetSendChannel() <- event:
	default:
		m.removeClient(client)
	}
}

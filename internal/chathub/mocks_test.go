package chathub_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"pairchat/backend/internal/broker"
	"pairchat/backend/internal/models"
)

// MockPresence is a testify mock of the chathub.Presence interface.
type MockPresence struct {
	mock.Mock
}

func (m *MockPresence) AddRoomUser(roomID string) (int, error) {
	args := m.Called(roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockPresence) RemoveRoomUser(roomID string) (int, error) {
	args := m.Called(roomID)
	return args.Int(0), args.Error(1)
}

// MockSender is a testify mock of the chathub.MessageSender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendChatMessage(dto models.ChatMessage) error {
	args := m.Called(dto)
	return args.Error(0)
}

// fakeBroker hands the test direct control over the subscription channel.
type fakeBroker struct {
	events chan broker.Event

	mu        sync.Mutex
	published []broker.Event
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{events: make(chan broker.Event, 16)}
}

func (b *fakeBroker) Publish(event broker.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
	return nil
}

func (b *fakeBroker) Subscribe(ctx context.Context) (<-chan broker.Event, func(), error) {
	return b.events, func() {}, nil
}

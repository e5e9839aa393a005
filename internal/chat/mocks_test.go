package chat_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pairchat/backend/internal/broker"
	"pairchat/backend/internal/models"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) FindUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) FindUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) FindUserByNickname(nickname string) (*models.User, error) {
	args := m.Called(nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) CreateRoomWithAlarm(room *models.ChatRoom, alarm *models.Alarm) error {
	args := m.Called(room, alarm)
	return args.Error(0)
}

func (m *MockStorage) GetRoomByID(roomID string) (*models.ChatRoom, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRoom), args.Error(1)
}

func (m *MockStorage) GetRoomsForUser(userID string) ([]models.ChatRoom, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatRoom), args.Error(1)
}

func (m *MockStorage) RoomExistsForPair(userA, userB string) (bool, error) {
	args := m.Called(userA, userB)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) SaveMessage(content *models.ChatContent) error {
	args := m.Called(content)
	return args.Error(0)
}

func (m *MockStorage) GetChatHistory(roomID string) ([]models.ChatContent, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatContent), args.Error(1)
}

func (m *MockStorage) GetLastMessage(roomID string) (*models.ChatContent, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatContent), args.Error(1)
}

func (m *MockStorage) CountUnread(roomID, excludeUserID string) (int64, error) {
	args := m.Called(roomID, excludeUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) MarkMessagesRead(roomID, viewerID string) error {
	args := m.Called(roomID, viewerID)
	return args.Error(0)
}

func (m *MockStorage) MirrorRoom(room *models.ChatRoom) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockStorage) AddRoomUser(roomID string) (int, error) {
	args := m.Called(roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) RemoveRoomUser(roomID string) (int, error) {
	args := m.Called(roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) GetUserCount(roomID string) (int, error) {
	args := m.Called(roomID)
	return args.Int(0), args.Error(1)
}

// MockBroker records published events.
type MockBroker struct {
	mock.Mock
}

func (m *MockBroker) Publish(event broker.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockBroker) Subscribe(ctx context.Context) (<-chan broker.Event, func(), error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(<-chan broker.Event), args.Get(1).(func()), args.Error(2)
}

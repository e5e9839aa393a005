package chathub_test

import "pairchat/backend/internal/broker"

type MockClient struct {
	userID      string
	nickname    string
	roomID      string
	RecvChannel chan broker.Event
}

func newMockClient(userID, roomID string) *MockClient {
	return &MockClient{
		userID:      userID,
		nickname:    userID,
		roomID:      roomID,
		RecvChannel: make(chan broker.Event, 10),
	}
}

func (c *MockClient) GetUserID() string   { return c.userID }
func (c *MockClient) GetNickname() string { return c.nickname }
func (c *MockClient) GetRoomID() string   { return c.roomID }

func (c *MockClient) GetSendChannel() chan<- broker.Event {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	// Not needed for testing
}

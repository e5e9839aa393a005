package chathub

import "pairchat/backend/internal/broker"

// Client is the interface for one live connection subscribed to a room's
// traffic. It abstracts the underlying transport so the hub can manage
// connection types uniformly.
type Client interface {
	// GetUserID returns the stable id of the connected user.
	GetUserID() string
	// GetNickname returns the display name used in room announcements.
	GetNickname() string
	// GetRoomID returns the room this connection is subscribed to.
	GetRoomID() string

	// GetSendChannel returns the channel the hub delivers broker events
	// into for this connection. Send-only from the hub's perspective.
	GetSendChannel() chan<- broker.Event

	// Run starts the connection's read and write pumps.
	Run()
	// Close shuts the connection down and releases its channels.
	Close()
}

package models

import "time"

// MessageType classifies an incoming chat message.
type MessageType string

const (
	// MessageTypeEnter announces a user joining a room. Never persisted.
	MessageTypeEnter MessageType = "ENTER"
	// MessageTypeQuit announces a user leaving a room. Never persisted.
	MessageTypeQuit MessageType = "QUIT"
	// MessageTypeTalk is regular user content. Persisted, then published.
	MessageTypeTalk MessageType = "TALK"
)

// ChatMessage is the wire DTO exchanged with live connections and fanned
// out over the broker. SenderID carries the stable user id; Sender is the
// display nickname (rewritten to the system marker for ENTER/QUIT).
type ChatMessage struct {
	Type     MessageType `json:"type"`
	RoomID   string      `json:"room_id"`
	SenderID string      `json:"sender_id"`
	Sender   string      `json:"sender"`
	Message  string      `json:"message"`
	// UserCount is the live participant count of the room at send time,
	// filled in by the service from the room cache.
	UserCount int `json:"user_count"`
}

// AlarmMessage is the wire DTO published for a freshly created alarm.
type AlarmMessage struct {
	AlarmID       uint   `json:"alarm_id"`
	Type          string `json:"type"`
	Message       string `json:"message"`
	ChatRoomID    string `json:"chat_room_id"`
	AlarmTargetID string `json:"alarm_target_id"`
}

// RoomSummary is one row of a user's room list: the counterpart's display
// data plus last-message and unread bookkeeping. Derived on demand, never
// stored.
type RoomSummary struct {
	RoomID        string    `json:"room_id"`
	Nickname      string    `json:"nickname"`
	ProfileImgURL string    `json:"profile_img_url"`
	LastContent   string    `json:"last_content"`
	LastContentAt time.Time `json:"last_content_at"`
	UnreadCount   int       `json:"unread_count"`
}

// ChatHistoryEntry is one row of a room's history as served to a viewer.
type ChatHistoryEntry struct {
	Sender        string    `json:"sender"`
	ProfileImgURL string    `json:"profile_img_url"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateRoomRequest asks for a new room between PubID (initiator) and
// SubID (invitee).
type CreateRoomRequest struct {
	PubID string `json:"pub_id"`
	SubID string `json:"sub_id"`
}

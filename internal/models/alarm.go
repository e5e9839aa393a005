package models

import "time"

// AlarmTypeInvitedChat marks a notification created when a user is invited
// into a freshly created chat room.
const AlarmTypeInvitedChat = "INVITED_CHAT"

// Alarm is a durable notification record. Created once at room creation,
// immutable afterwards; live delivery goes through the broker, retrieval
// of stored alarms is outside this service.
type Alarm struct {
	// ID is the alarm primary key.
	ID uint `gorm:"primaryKey" json:"id"`
	// UserID is the user the alarm is addressed to.
	UserID string `gorm:"not null;index" json:"user_id"`
	// Type is the alarm kind, e.g. AlarmTypeInvitedChat.
	Type string `gorm:"not null" json:"type"`
	// PubID is the user whose action produced the alarm.
	PubID string `gorm:"not null" json:"pub_id"`
	// Message is the human-readable alarm text.
	Message string `gorm:"type:text;not null" json:"message"`
	// RoomID links the alarm to the room it concerns.
	RoomID string `gorm:"not null" json:"room_id"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// ChatContent is one persisted chat message in a room's append-only log.
// CreatedAt ascending is the replay order; rows are never updated except
// for the IsRead flag, which only ever flips false -> true.
type ChatContent struct {
	// ID is the message primary key.
	ID uint `gorm:"primaryKey" json:"id"`
	// RoomID is the room owning this message.
	RoomID string `gorm:"not null;index:idx_room_content" json:"room_id"`
	// UserID is the stable id of the author.
	UserID string `gorm:"not null;index:idx_room_content" json:"user_id"`
	// Content is the message body.
	Content string `gorm:"type:text;not null" json:"content"`
	// IsRead is false while the counterpart has not yet seen the message.
	// Set true at creation when the counterpart was live in the room at
	// send time (presence-based auto-read).
	IsRead bool `gorm:"not null" json:"is_read"`
	// CreatedAt is the append timestamp.
	CreatedAt time.Time `json:"created_at"`
}

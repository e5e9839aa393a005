package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatRoom is a durable record pairing exactly two users for private chat.
// The unordered pair (PubUserID, SubUserID) is unique across all rooms:
// UserLow/UserHigh hold the normalized pair and carry a composite unique
// index, so the database rejects a second room for the same two users
// regardless of who initiated it.
type ChatRoom struct {
	// RoomID is the unique identifier of the room (UUID).
	RoomID string `gorm:"primaryKey" json:"room_id"`
	// PubUserID is the user who opened the room.
	PubUserID string `gorm:"not null" json:"pub_user_id"`
	// SubUserID is the invited counterpart.
	SubUserID string `gorm:"not null" json:"sub_user_id"`
	// UserLow and UserHigh are PubUserID/SubUserID in normalized order.
	// Maintained by the BeforeCreate hook; never set directly.
	UserLow  string `gorm:"not null;uniqueIndex:idx_room_pair" json:"-"`
	UserHigh string `gorm:"not null;uniqueIndex:idx_room_pair" json:"-"`
	// CreatedAt is the timestamp when the room was created.
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate allocates a UUID when RoomID is unset and normalizes the
// participant pair into UserLow/UserHigh.
func (r *ChatRoom) BeforeCreate(tx *gorm.DB) (err error) {
	if r.RoomID == "" {
		r.RoomID = uuid.New().String()
	}
	r.UserLow, r.UserHigh = NormalizePair(r.PubUserID, r.SubUserID)
	return
}

// Counterpart returns the other participant's id, given one participant.
func (r *ChatRoom) Counterpart(userID string) string {
	if userID == r.SubUserID {
		return r.PubUserID
	}
	return r.SubUserID
}

// NormalizePair orders two user ids so that (a,b) and (b,a) map to the
// same key.
func NormalizePair(a, b string) (low, high string) {
	if a > b {
		return b, a
	}
	return a, b
}

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered user. The chat core only reads identity,
// nickname and avatar; account management lives outside this service.
type User struct {
	// ID is the stable internal identifier (UUID). All chat records key on
	// it; Nickname is display data only.
	ID string `gorm:"primaryKey" json:"id"`
	// Username is the login name, unique across users.
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Nickname is the display name shown in rooms. Not guaranteed unique.
	Nickname string `gorm:"index;not null" json:"nickname"`
	// ProfileImgURL points at the user's avatar.
	ProfileImgURL string `json:"profile_img_url"`
}

// BeforeCreate is a GORM hook that allocates a UUID when the ID is unset.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

package storage

import (
	"errors"

	"gorm.io/gorm"

	"pairchat/backend/internal/apperr"
	"pairchat/backend/internal/models"
)

// SaveMessage appends one message to a room's log. GORM fills CreatedAt
// with wall-clock time when it is zero; a caller backfilling history may
// supply its own timestamp. No dedup: at-least-once is the caller's
// responsibility.
func (s *Service) SaveMessage(content *models.ChatContent) error {
	if content.RoomID == "" {
		return apperr.Validation("message without a room id")
	}
	if content.UserID == "" {
		return apperr.Validation("message without an author")
	}
	return s.DB.Create(content).Error
}

// GetChatHistory returns the full message log of a room, oldest first.
func (s *Service) GetChatHistory(roomID string) ([]models.ChatContent, error) {
	var history []models.ChatContent
	err := s.DB.
		Where("room_id = ?", roomID).
		Order("created_at asc").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// GetLastMessage returns the newest message of a room, or nil when the
// room has no messages yet.
func (s *Service) GetLastMessage(roomID string) (*models.ChatContent, error) {
	var content models.ChatContent
	err := s.DB.
		Where("room_id = ?", roomID).
		Order("created_at desc").
		First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// CountUnread counts messages in the room that are unread and not
// authored by excludeUserID.
func (s *Service) CountUnread(roomID, excludeUserID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.ChatContent{}).
		Where("room_id = ? AND user_id != ? AND is_read = ?", roomID, excludeUserID, false).
		Count(&count).Error
	return count, err
}

// MarkMessagesRead flips is_read for every unread message in the room not
// authored by the viewer. Idempotent; a message appended concurrently with
// the sweep may end up either read or unread.
func (s *Service) MarkMessagesRead(roomID, viewerID string) error {
	return s.DB.Model(&models.ChatContent{}).
		Where("room_id = ? AND user_id != ? AND is_read = ?", roomID, viewerID, false).
		Update("is_read", true).Error
}

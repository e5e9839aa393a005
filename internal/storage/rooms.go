package storage

import (
	"errors"

	"gorm.io/gorm"

	"pairchat/backend/internal/apperr"
	"pairchat/backend/internal/models"
)

// CreateRoomWithAlarm persists a room and its invitation alarm in one
// transaction: both commit or neither does. The composite unique index on
// the normalized pair is the final arbiter of pair uniqueness; a duplicate
// insert surfaces as ConflictError regardless of any pre-check the caller
// ran.
func (s *Service) CreateRoomWithAlarm(room *models.ChatRoom, alarm *models.Alarm) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		alarm.RoomID = room.RoomID
		return tx.Create(alarm).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("chat room", "a room already exists for this pair")
	}
	return err
}

// GetRoomByID fetches a room by id.
func (s *Service) GetRoomByID(roomID string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := s.DB.Where("room_id = ?", roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("chat room", roomID)
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetRoomsForUser returns every room the user participates in, in storage
// order.
func (s *Service) GetRoomsForUser(userID string) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	err := s.DB.
		Where("pub_user_id = ? OR sub_user_id = ?", userID, userID).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// RoomExistsForPair reports whether a room already connects the two users,
// in either orientation. Advisory pre-check only: two concurrent creates
// can both see false here, and the unique index decides.
func (s *Service) RoomExistsForPair(userA, userB string) (bool, error) {
	low, high := models.NormalizePair(userA, userB)
	var count int64
	err := s.DB.Model(&models.ChatRoom{}).
		Where("user_low = ? AND user_high = ?", low, high).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

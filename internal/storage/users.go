package storage

import (
	"errors"

	"gorm.io/gorm"

	"pairchat/backend/internal/apperr"
	"pairchat/backend/internal/models"
)

// SaveUser upserts a user record.
func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// FindUserByID looks a user up by stable id.
func (s *Service) FindUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUsername looks a user up by login name.
func (s *Service) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user", username)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByNickname looks a user up by display name. Nicknames are not
// unique; the first match in storage order wins. Kept for display-side
// lookups only, identity always keys on FindUserByID.
func (s *Service) FindUserByNickname(nickname string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("nickname = ?", nickname).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user", nickname)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pairchat/backend/internal/models"
)

// Storage is the durable + ephemeral persistence surface consumed by the
// chat service and the hub. PostgreSQL (via GORM) backs rooms, messages,
// users and alarms; Redis backs the ephemeral room cache and presence
// counters.
type Storage interface {
	// User directory (consumed, not managed, by the chat core).
	SaveUser(user *models.User) error
	FindUserByID(id string) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)
	FindUserByNickname(nickname string) (*models.User, error)

	// Room store.
	CreateRoomWithAlarm(room *models.ChatRoom, alarm *models.Alarm) error
	GetRoomByID(roomID string) (*models.ChatRoom, error)
	GetRoomsForUser(userID string) ([]models.ChatRoom, error)
	RoomExistsForPair(userA, userB string) (bool, error)

	// Message store.
	SaveMessage(content *models.ChatContent) error
	GetChatHistory(roomID string) ([]models.ChatContent, error)
	GetLastMessage(roomID string) (*models.ChatContent, error)
	CountUnread(roomID, excludeUserID string) (int64, error)
	MarkMessagesRead(roomID, viewerID string) error

	// Room cache / presence (Redis, volatile; never the source of truth
	// for membership).
	MirrorRoom(room *models.ChatRoom) error
	AddRoomUser(roomID string) (int, error)
	RemoveRoomUser(roomID string) (int, error)
	GetUserCount(roomID string) (int, error)
}

// Service implements Storage over a GORM handle and a Redis client.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

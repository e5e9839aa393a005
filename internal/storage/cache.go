package storage

import (
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"pairchat/backend/internal/models"
)

// Redis key layout for the ephemeral room cache.
const (
	roomKeyPrefix  = "chat:room:"
	countKeySuffix = ":count"
)

// MirrorRoom writes an ephemeral copy of an active room into Redis for the
// fast path. Best effort: the durable record in PostgreSQL already exists
// by the time this runs, so a failure here loses nothing.
func (s *Service) MirrorRoom(room *models.ChatRoom) error {
	key := roomKeyPrefix + room.RoomID
	return s.Redis.HSet(s.Ctx, key, map[string]interface{}{
		"pub_user_id": room.PubUserID,
		"sub_user_id": room.SubUserID,
	}).Err()
}

// AddRoomUser increments the live participant counter of a room and
// returns the new count. Called by the hub when a connection subscribes to
// the room's channel.
func (s *Service) AddRoomUser(roomID string) (int, error) {
	n, err := s.Redis.Incr(s.Ctx, roomKeyPrefix+roomID+countKeySuffix).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// RemoveRoomUser decrements the live participant counter, flooring at
// zero so a late unregister cannot drive it negative.
func (s *Service) RemoveRoomUser(roomID string) (int, error) {
	key := roomKeyPrefix + roomID + countKeySuffix
	n, err := s.Redis.Decr(s.Ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		s.Redis.Set(s.Ctx, key, 0, 0)
		return 0, nil
	}
	return int(n), nil
}

// GetUserCount answers "how many connections are live in this room right
// now". A missing key means nobody is connected. Volatile and advisory:
// durable membership lives in the room store.
func (s *Service) GetUserCount(roomID string) (int, error) {
	val, err := s.Redis.Get(s.Ctx, roomKeyPrefix+roomID+countKeySuffix).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Package chat implements the chat core: message classification and
// persistence, room creation with invitation alarms, room-list summaries
// and history replay. Live fan-out goes through the broker, durable state
// through the storage layer; within one send, persistence happens before
// publish so a subscriber that saw the live event always finds the
// message on a subsequent history fetch.
package chat

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"pairchat/backend/internal/apperr"
	"pairchat/backend/internal/broker"
	"pairchat/backend/internal/models"
	"pairchat/backend/internal/storage"
)

// SystemSender is the sender label on ENTER/QUIT announcements.
const SystemSender = "[notice]"

const (
	enterMessageFmt = "%s joined the room."
	quitMessageFmt  = "%s left the room."
	alarmMessageFmt = "A new chat with %s has started."
	alarmNoticeText = "[notice] a new chat room was created"
)

// Service orchestrates the room store, message store, room cache and
// broker. All references are constructor-injected; the service holds no
// ambient global state.
type Service struct {
	Storage storage.Storage
	Broker  broker.Broker
}

// NewService builds a chat service.
func NewService(s storage.Storage, b broker.Broker) *Service {
	return &Service{Storage: s, Broker: b}
}

// GetNickname resolves a login name to the display nickname.
func (s *Service) GetNickname(username string) (string, error) {
	user, err := s.Storage.FindUserByUsername(username)
	if err != nil {
		return "", err
	}
	return user.Nickname, nil
}

// RoomIDFromDestination extracts the room id from a subscription
// destination path, e.g. "/sub/chat/room/<id>".
func (s *Service) RoomIDFromDestination(destination string) string {
	lastIndex := strings.LastIndex(destination, "/")
	if lastIndex == -1 {
		return ""
	}
	return destination[lastIndex+1:]
}

// SendChatMessage classifies and dispatches one incoming message.
//
// ENTER and QUIT are rewritten into system announcements and only
// published, never persisted. TALK resolves the author and room, computes
// the read flag from the room's live participant count (unread only when
// the sender is alone), persists, then publishes.
func (s *Service) SendChatMessage(dto models.ChatMessage) error {
	count, err := s.Storage.GetUserCount(dto.RoomID)
	if err != nil {
		return err
	}
	dto.UserCount = count

	switch dto.Type {
	case models.MessageTypeEnter:
		dto.Message = fmt.Sprintf(enterMessageFmt, dto.Sender)
		dto.Sender = SystemSender
	case models.MessageTypeQuit:
		dto.Message = fmt.Sprintf(quitMessageFmt, dto.Sender)
		dto.Sender = SystemSender
	default:
		user, err := s.Storage.FindUserByID(dto.SenderID)
		if err != nil {
			return err
		}
		room, err := s.Storage.GetRoomByID(dto.RoomID)
		if err != nil {
			return err
		}

		// Read at creation unless the sender is alone in the room: an
		// absent counterpart has "seen" nothing, a present one sees the
		// live event immediately.
		content := &models.ChatContent{
			RoomID:  room.RoomID,
			UserID:  user.ID,
			Content: dto.Message,
			IsRead:  count != 1,
		}
		if err := s.Storage.SaveMessage(content); err != nil {
			return err
		}
		dto.Sender = user.Nickname
	}

	event, err := broker.MessageEvent(dto)
	if err != nil {
		return err
	}
	return s.Broker.Publish(event)
}

// CreateChatRoom creates a room between the requesting user and the
// invited counterpart, persists the invitation alarm in the same
// transaction, mirrors the room into the cache and publishes the alarm.
//
// The pair pre-check is advisory; the room store's unique constraint is
// the final arbiter under concurrent creates.
func (s *Service) CreateChatRoom(req models.CreateRoomRequest) (*models.ChatRoom, error) {
	if req.PubID == "" || req.SubID == "" {
		return nil, apperr.Validation("room request needs both participants")
	}
	if req.PubID == req.SubID {
		return nil, apperr.Validation("cannot open a room with yourself")
	}

	exists, err := s.Storage.RoomExistsForPair(req.PubID, req.SubID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("chat room", "a room already exists for this pair")
	}

	pubUser, err := s.Storage.FindUserByID(req.PubID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Storage.FindUserByID(req.SubID); err != nil {
		return nil, err
	}

	room := &models.ChatRoom{
		PubUserID: req.PubID,
		SubUserID: req.SubID,
	}
	alarm := &models.Alarm{
		UserID:  req.SubID,
		Type:    models.AlarmTypeInvitedChat,
		PubID:   req.PubID,
		Message: fmt.Sprintf(alarmMessageFmt, pubUser.Nickname),
	}
	if err := s.Storage.CreateRoomWithAlarm(room, alarm); err != nil {
		return nil, err
	}

	// Cache registration mirrors the committed record; losing it only
	// costs the fast path.
	if err := s.Storage.MirrorRoom(room); err != nil {
		log.Printf("chat: failed to mirror room %s: %v", room.RoomID, err)
	}

	event, err := broker.AlarmEvent(models.AlarmMessage{
		AlarmID:       alarm.ID,
		Type:          alarm.Type,
		Message:       alarmNoticeText,
		ChatRoomID:    room.RoomID,
		AlarmTargetID: room.SubUserID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Broker.Publish(event); err != nil {
		return nil, err
	}

	return room, nil
}

// ListMyRooms assembles the requesting user's room list: counterpart
// display data, last-message summary and unread count per room, sorted by
// last-message time descending with room id as the deterministic
// tie-break.
func (s *Service) ListMyRooms(userID string) ([]models.RoomSummary, error) {
	rooms, err := s.Storage.GetRoomsForUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		counterpart, err := s.Storage.FindUserByID(room.Counterpart(userID))
		if err != nil {
			return nil, err
		}

		lastContent := ""
		lastContentAt := time.Now()
		last, err := s.Storage.GetLastMessage(room.RoomID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			lastContent = last.Content
			lastContentAt = last.CreatedAt
		}

		unread, err := s.Storage.CountUnread(room.RoomID, userID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, models.RoomSummary{
			RoomID:        room.RoomID,
			Nickname:      counterpart.Nickname,
			ProfileImgURL: counterpart.ProfileImgURL,
			LastContent:   lastContent,
			LastContentAt: lastContentAt,
			UnreadCount:   int(unread),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].LastContentAt.Equal(summaries[j].LastContentAt) {
			return summaries[i].LastContentAt.After(summaries[j].LastContentAt)
		}
		return summaries[i].RoomID < summaries[j].RoomID
	})

	return summaries, nil
}

// GetHistory returns a room's full ordered log for the viewer and, as a
// side effect, marks every unread message not authored by the viewer as
// read (coarse read receipt: viewing the room clears its unread state).
func (s *Service) GetHistory(roomID, viewerID string) ([]models.ChatHistoryEntry, error) {
	room, err := s.Storage.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	history, err := s.Storage.GetChatHistory(room.RoomID)
	if err != nil {
		return nil, err
	}
	if err := s.Storage.MarkMessagesRead(room.RoomID, viewerID); err != nil {
		return nil, err
	}

	authors := make(map[string]*models.User)
	entries := make([]models.ChatHistoryEntry, 0, len(history))
	for _, content := range history {
		author, ok := authors[content.UserID]
		if !ok {
			author, err = s.Storage.FindUserByID(content.UserID)
			if err != nil {
				return nil, err
			}
			authors[content.UserID] = author
		}
		entries = append(entries, models.ChatHistoryEntry{
			Sender:        author.Nickname,
			ProfileImgURL: author.ProfileImgURL,
			Content:       content.Content,
			CreatedAt:     content.CreatedAt,
		})
	}
	return entries, nil
}

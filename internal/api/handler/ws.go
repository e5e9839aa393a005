package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pairchat/backend/internal/broker"
	"pairchat/backend/internal/chathub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and registers it with the hub as
// a live participant of the requested room.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	userID, ok := h.userIDFromRequest(c)
	if !ok {
		return
	}

	roomID := c.Query("room")
	if roomID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "room query parameter required"})
		return
	}

	room, err := h.Chat.Storage.GetRoomByID(roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if room.PubUserID != userID && room.SubUserID != userID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a participant of this room"})
		return
	}

	user, err := h.Chat.Storage.FindUserByID(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		UserID:   user.ID,
		Nickname: user.Nickname,
		RoomID:   room.RoomID,
		Conn:     conn,
		Hub:      h.Hub,
		Send:     make(chan broker.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}

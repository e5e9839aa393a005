package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pairchat/backend/internal/models"
)

// CreateRoom opens a room between the authenticated user and the invited
// counterpart.
func (h *Handler) CreateRoom(c *gin.Context) {
	userID, ok := h.userIDFromRequest(c)
	if !ok {
		return
	}

	var req struct {
		SubID string `json:"sub_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "sub_id required"})
		return
	}

	room, err := h.Chat.CreateChatRoom(models.CreateRoomRequest{
		PubID: userID,
		SubID: req.SubID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// ListRooms returns the authenticated user's room list with last-message
// summaries and unread counts.
func (h *Handler) ListRooms(c *gin.Context) {
	userID, ok := h.userIDFromRequest(c)
	if !ok {
		return
	}

	rooms, err := h.Chat.ListMyRooms(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// RoomHistory returns the full message log of a room and marks the
// counterpart's messages read for the viewer.
func (h *Handler) RoomHistory(c *gin.Context) {
	userID, ok := h.userIDFromRequest(c)
	if !ok {
		return
	}

	history, err := h.Chat.GetHistory(c.Param("id"), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

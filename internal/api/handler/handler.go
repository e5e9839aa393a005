// Package handler adapts the chat core to HTTP and WebSocket transports.
// It owns no business logic: requests are authenticated, decoded and
// passed straight to the chat service.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pairchat/backend/internal/apperr"
	"pairchat/backend/internal/chat"
	"pairchat/backend/internal/chathub"
)

// Handler carries the hub, the chat service and the JWT signing secret.
type Handler struct {
	Hub       *chathub.ManagerService
	Chat      *chat.Service
	JWTSecret []byte
}

func NewHandler(hub *chathub.ManagerService, chatSvc *chat.Service, secret []byte) *Handler {
	return &Handler{Hub: hub, Chat: chatSvc, JWTSecret: secret}
}

// abortWithError maps the core error taxonomy onto HTTP status codes.
func abortWithError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.IsNotFound(err):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.IsConflict(err):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

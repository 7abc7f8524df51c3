// internal/handler/presence_handler.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-relay-service/internal/ws"
)

type PresenceHandler struct {
	presence *ws.PresenceRegistry
}

func NewPresenceHandler(presence *ws.PresenceRegistry) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// GetOnlineUsers returns the live presence snapshot.
func (h *PresenceHandler) GetOnlineUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.presence.Snapshot())
}

// GetUserStatus reports whether a single user is currently reachable.
func (h *PresenceHandler) GetUserStatus(c *gin.Context) {
	userID := c.Param("userId")

	_, online := h.presence.Lookup(userID)
	c.JSON(http.StatusOK, gin.H{
		"userId": userID,
		"online": online,
	})
}

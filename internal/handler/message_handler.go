// internal/handler/message_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chat-relay-service/internal/service"
)

type MessageHandler struct {
	messageService service.MessageService
	logger         *zap.Logger
}

func NewMessageHandler(messageService service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// GetHistory returns the persisted messages for a direct peer or group target.
func (h *MessageHandler) GetHistory(c *gin.Context) {
	targetID := c.Param("targetId")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": "Target ID required"},
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.messageService.GetHistory(targetID, limit, offset)
	if err != nil {
		h.logger.Error("failed to get message history", zap.String("targetId", targetID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to get messages"},
		})
		return
	}

	c.JSON(http.StatusOK, ToMessageResponses(messages))
}

// GetMessageCount returns the number of persisted messages for a target.
func (h *MessageHandler) GetMessageCount(c *gin.Context) {
	targetID := c.Param("targetId")

	count, err := h.messageService.CountMessages(targetID)
	if err != nil {
		h.logger.Error("failed to count messages", zap.String("targetId", targetID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to count messages"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"targetId": targetID, "count": count})
}

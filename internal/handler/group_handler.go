// internal/handler/group_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"chat-relay-service/internal/model"
	"chat-relay-service/internal/service"
)

type GroupHandler struct {
	groupService service.GroupService
	logger       *zap.Logger
}

func NewGroupHandler(groupService service.GroupService, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		logger:       logger,
	}
}

type CreateGroupRequest struct {
	Name    string             `json:"name" binding:"required,max=100"`
	Members model.GroupMembers `json:"members"`
}

// CreateGroup creates a durable group over HTTP. Groups created here become
// routable once connections join them over the socket.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
		})
		return
	}

	userID := c.GetString("user_id")
	createdBy := model.GroupMember{UserID: userID, DisplayName: userID}

	group, err := h.groupService.CreateGroup(req.Name, req.Members, createdBy)
	if err != nil {
		h.logger.Error("failed to create group", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to create group"},
		})
		return
	}

	c.JSON(http.StatusCreated, ToGroupResponse(group))
}

func (h *GroupHandler) GetGroups(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if member := c.Query("member"); member != "" {
		groups, err := h.groupService.GetGroupsByMember(member)
		if err != nil {
			h.logger.Error("failed to list groups by member", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to list groups"},
			})
			return
		}
		c.JSON(http.StatusOK, ToGroupResponses(groups))
		return
	}

	groups, err := h.groupService.GetGroups(limit, offset)
	if err != nil {
		h.logger.Error("failed to list groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to list groups"},
		})
		return
	}

	c.JSON(http.StatusOK, ToGroupResponses(groups))
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": "Invalid group ID"},
		})
		return
	}

	group, err := h.groupService.GetGroup(groupID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   gin.H{"code": "NOT_FOUND", "message": "Group not found"},
		})
		return
	}

	c.JSON(http.StatusOK, ToGroupResponse(group))
}

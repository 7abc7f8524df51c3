// internal/handler/dto.go
package handler

import (
	"time"

	"chat-relay-service/internal/model"
)

// GroupResponse is the group API response DTO.
type GroupResponse struct {
	GroupID   string             `json:"groupId"`
	Name      string             `json:"name"`
	Members   model.GroupMembers `json:"members"`
	CreatedBy model.GroupMember  `json:"createdBy"`
	CreatedAt time.Time          `json:"createdAt"`
}

func ToGroupResponse(group *model.Group) GroupResponse {
	return GroupResponse{
		GroupID: group.GroupID.String(),
		Name:    group.Name,
		Members: group.Members,
		CreatedBy: model.GroupMember{
			UserID:      group.CreatedByID,
			DisplayName: group.CreatedByName,
		},
		CreatedAt: group.CreatedAt,
	}
}

func ToGroupResponses(groups []model.Group) []GroupResponse {
	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = ToGroupResponse(&group)
	}
	return responses
}

// MessageResponse is the message history API response DTO.
type MessageResponse struct {
	ID          string    `json:"id"`
	Sender      string    `json:"sender"`
	SenderName  string    `json:"senderName"`
	Receiver    string    `json:"receiver"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	PayloadKind string    `json:"payloadKind"`
	FileName    *string   `json:"fileName,omitempty"`
	FileSize    *int64    `json:"fileSize,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToMessageResponse(msg *model.Message) MessageResponse {
	return MessageResponse{
		ID:          msg.MessageID.String(),
		Sender:      msg.SenderID,
		SenderName:  msg.SenderName,
		Receiver:    msg.TargetID,
		Type:        string(msg.TargetKind),
		Content:     msg.Content,
		PayloadKind: string(msg.PayloadKind),
		FileName:    msg.FileName,
		FileSize:    msg.FileSize,
		CreatedAt:   msg.CreatedAt,
	}
}

func ToMessageResponses(messages []model.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = ToMessageResponse(&msg)
	}
	return responses
}

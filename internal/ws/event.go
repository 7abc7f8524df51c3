// internal/ws/event.go
package ws

import (
	"encoding/json"

	"chat-relay-service/internal/model"
)

// Client -> server event names.
const (
	EventOnline      = "online"
	EventSendMessage = "sendMessage"
	EventTyping      = "typing"
	EventStopTyping  = "stopTyping"
	EventCreateGroup = "createGroup"
	EventJoinGroup   = "joinGroup"
	EventSendFile    = "sendFile"
)

// Server -> client event names.
const (
	EventUpdateUsers       = "updateUsers"
	EventReceiveMessage    = "receiveMessage"
	EventMessageSent       = "messageSent"
	EventUserTyping        = "userTyping"
	EventUserStoppedTyping = "userStoppedTyping"
	EventGroupCreated      = "groupCreated"
	EventReceiveFile       = "receiveFile"
	EventFileSent          = "fileSent"
	EventFileError         = "fileError"
	EventError             = "error"
)

// Envelope is the tagged wire frame used in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func encodeEvent(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}

// PresenceUser is one entry of the updateUsers broadcast.
type PresenceUser struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	ProfileName string `json:"profileName,omitempty"`
	DisplayName string `json:"displayName"`
	SocketID    string `json:"socketId"`
	Online      bool   `json:"online"`
}

type SendMessagePayload struct {
	Receiver string           `json:"receiver"`
	Type     model.TargetKind `json:"type"`
	Content  string           `json:"content"`
}

// RelayedMessage is the receiveMessage payload. ID and Timestamp are stamped
// by the router; Sender and SenderName come from the authenticated connection.
type RelayedMessage struct {
	ID         string           `json:"id"`
	Sender     string           `json:"sender"`
	SenderName string           `json:"senderName"`
	Receiver   string           `json:"receiver"`
	Type       model.TargetKind `json:"type"`
	Content    string           `json:"content"`
	Timestamp  int64            `json:"timestamp"`
}

type MessageSentPayload struct {
	Status  string         `json:"status"`
	Message RelayedMessage `json:"message"`
}

type TypingPayload struct {
	UserID     string `json:"userId"`
	ReceiverID string `json:"receiverId"`
}

type UserTypingPayload struct {
	UserID string `json:"userId"`
}

type CreateGroupPayload struct {
	GroupID   string   `json:"groupId,omitempty"`
	GroupName string   `json:"groupName"`
	Members   []string `json:"members"`
}

type GroupCreatedPayload struct {
	GroupID string             `json:"groupId"`
	Name    string             `json:"name"`
	Members model.GroupMembers `json:"members"`
}

type JoinGroupPayload struct {
	GroupID string `json:"groupId"`
}

type FileAttachment struct {
	Data string `json:"data"`
	Name string `json:"name,omitempty"`
}

type SendFilePayload struct {
	Receiver string           `json:"receiver"`
	Type     model.TargetKind `json:"type"`
	File     FileAttachment   `json:"file"`
}

// RelayedFile is the receiveFile payload.
type RelayedFile struct {
	ID         string           `json:"id"`
	Sender     string           `json:"sender"`
	SenderName string           `json:"senderName"`
	Receiver   string           `json:"receiver"`
	Type       model.TargetKind `json:"type"`
	File       FileAttachment   `json:"file"`
	FileSize   int64            `json:"fileSize"`
	Timestamp  int64            `json:"timestamp"`
	Status     string           `json:"status"`
}

type FileSentPayload struct {
	Status  string      `json:"status"`
	Message RelayedFile `json:"message"`
}

type FileErrorPayload struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// internal/model/message.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TargetKind string

const (
	TargetDirect TargetKind = "direct"
	TargetGroup  TargetKind = "group"
)

type PayloadKind string

const (
	PayloadText PayloadKind = "text"
	PayloadFile PayloadKind = "file"
)

// Message is the durable record of a relayed message. Persistence is
// independent of relay delivery; a message saved here may never have reached
// its target and vice versa.
type Message struct {
	MessageID   uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID    string      `gorm:"type:varchar(64);not null;index" json:"sender"`
	SenderName  string      `gorm:"type:varchar(100)" json:"senderName"`
	TargetKind  TargetKind  `gorm:"type:varchar(10);not null" json:"type"`
	TargetID    string      `gorm:"type:varchar(64);not null;index:idx_messages_target_created" json:"receiver"`
	Content     string      `gorm:"type:text" json:"content"`
	PayloadKind PayloadKind `gorm:"type:varchar(10);default:'text'" json:"payloadKind"`
	FileName    *string     `gorm:"type:varchar(255)" json:"fileName,omitempty"`
	FileSize    *int64      `gorm:"type:bigint" json:"fileSize,omitempty"`
	CreatedAt   time.Time   `gorm:"autoCreateTime;index:idx_messages_target_created" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}

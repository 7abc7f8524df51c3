// internal/repository/message_repository.go
package repository

import (
	"gorm.io/gorm"

	"chat-relay-service/internal/model"
)

type MessageRepository interface {
	CreateMessage(message *model.Message) error
	GetMessagesByTarget(targetID string, limit, offset int) ([]model.Message, error)
	CountMessagesByTarget(targetID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateMessage(message *model.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) GetMessagesByTarget(targetID string, limit, offset int) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.Where("target_id = ?", targetID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error

	return messages, err
}

func (r *messageRepository) CountMessagesByTarget(targetID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Message{}).
		Where("target_id = ?", targetID).
		Count(&count).Error

	return count, err
}

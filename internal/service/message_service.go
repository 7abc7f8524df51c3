// internal/service/message_service.go
package service

import (
	"fmt"

	"chat-relay-service/internal/model"
	"chat-relay-service/internal/repository"
)

type MessageService interface {
	RecordMessage(message *model.Message) error
	GetHistory(targetID string, limit, offset int) ([]model.Message, error)
	CountMessages(targetID string) (int64, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) RecordMessage(message *model.Message) error {
	if err := s.messageRepo.CreateMessage(message); err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}
	return nil
}

func (s *messageService) GetHistory(targetID string, limit, offset int) ([]model.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	return s.messageRepo.GetMessagesByTarget(targetID, limit, offset)
}

func (s *messageService) CountMessages(targetID string) (int64, error) {
	return s.messageRepo.CountMessagesByTarget(targetID)
}

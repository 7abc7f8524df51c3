// internal/service/group_service.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	"chat-relay-service/internal/model"
	"chat-relay-service/internal/repository"
)

type GroupService interface {
	CreateGroup(name string, members model.GroupMembers, createdBy model.GroupMember) (*model.Group, error)
	GetGroup(groupID uuid.UUID) (*model.Group, error)
	GetGroups(limit, offset int) ([]model.Group, error)
	GetGroupsByMember(userID string) ([]model.Group, error)
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

// CreateGroup persists a new group. Names carry no uniqueness constraint: two
// creates with the same name produce two distinct groups, only the generated
// groupId is unique.
func (s *groupService) CreateGroup(name string, members model.GroupMembers, createdBy model.GroupMember) (*model.Group, error) {
	group := &model.Group{
		GroupID:       uuid.New(),
		Name:          name,
		Members:       members.Dedupe(),
		CreatedByID:   createdBy.UserID,
		CreatedByName: createdBy.DisplayName,
	}

	if err := s.groupRepo.CreateGroup(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

func (s *groupService) GetGroup(groupID uuid.UUID) (*model.Group, error) {
	return s.groupRepo.GetGroupByID(groupID)
}

func (s *groupService) GetGroups(limit, offset int) ([]model.Group, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	return s.groupRepo.GetGroups(limit, offset)
}

func (s *groupService) GetGroupsByMember(userID string) ([]model.Group, error) {
	return s.groupRepo.GetGroupsByMember(userID)
}

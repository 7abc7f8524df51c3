// internal/repository/group_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"chat-relay-service/internal/model"
)

type GroupRepository interface {
	CreateGroup(group *model.Group) error
	GetGroupByID(groupID uuid.UUID) (*model.Group, error)
	GetGroups(limit, offset int) ([]model.Group, error)
	GetGroupsByMember(userID string) ([]model.Group, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) CreateGroup(group *model.Group) error {
	return r.db.Create(group).Error
}

func (r *groupRepository) GetGroupByID(groupID uuid.UUID) (*model.Group, error) {
	var group model.Group
	err := r.db.First(&group, "group_id = ?", groupID).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetGroups(limit, offset int) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&groups).Error

	return groups, err
}

func (r *groupRepository) GetGroupsByMember(userID string) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.
		Where("members @> ?", `[{"userId":"`+userID+`"}]`).
		Order("created_at DESC").
		Find(&groups).Error

	return groups, err
}

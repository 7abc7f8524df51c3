// internal/model/group.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GroupMember is a single durable member entry {userId, displayName}.
type GroupMember struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// GroupMembers is stored as a JSONB column.
type GroupMembers []GroupMember

func (m GroupMembers) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *GroupMembers) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for GroupMembers", value)
	}
	return json.Unmarshal(b, m)
}

// Group represents durable group membership. The generated GroupID is the only
// unique key; two groups may share a name.
type Group struct {
	GroupID       uuid.UUID    `gorm:"type:uuid;primaryKey" json:"groupId"`
	Name          string       `gorm:"type:varchar(100);not null" json:"name"`
	Members       GroupMembers `gorm:"type:jsonb" json:"members"`
	CreatedByID   string       `gorm:"type:varchar(64);not null;index" json:"createdById"`
	CreatedByName string       `gorm:"type:varchar(100)" json:"createdByName"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Group) TableName() string {
	return "groups"
}

// Dedupe returns members deduplicated by userId, first occurrence wins.
func (m GroupMembers) Dedupe() GroupMembers {
	seen := make(map[string]bool, len(m))
	out := make(GroupMembers, 0, len(m))
	for _, member := range m {
		if seen[member.UserID] {
			continue
		}
		seen[member.UserID] = true
		out = append(out, member)
	}
	return out
}

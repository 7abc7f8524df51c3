// internal/ws/rooms.go
package ws

import (
	"sync"

	"github.com/google/uuid"

	"chat-relay-service/internal/model"
	"chat-relay-service/internal/repository"
)

// RosterCache is a read-through overlay of durable group membership plus the
// routing-only room map. Room membership (which live connections receive a
// group broadcast) is distinct from the durable members set and the two are
// never reconciled: joining a room does not append to durable membership.
type RosterCache struct {
	mu     sync.RWMutex
	groups map[string]*model.Group
	rooms  map[string]map[*Client]bool

	repo repository.GroupRepository
}

func NewRosterCache(repo repository.GroupRepository) *RosterCache {
	return &RosterCache{
		groups: make(map[string]*model.Group),
		rooms:  make(map[string]map[*Client]bool),
		repo:   repo,
	}
}

// Seed puts a freshly persisted group into the cache.
func (rc *RosterCache) Seed(group *model.Group) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.groups[group.GroupID.String()] = group
}

// Resolve returns the group for groupID, falling back to the durable store on
// a cache miss. Returns nil when the group does not exist.
func (rc *RosterCache) Resolve(groupID string) *model.Group {
	rc.mu.RLock()
	group, ok := rc.groups[groupID]
	rc.mu.RUnlock()
	if ok {
		return group
	}

	id, err := uuid.Parse(groupID)
	if err != nil {
		return nil
	}
	if rc.repo == nil {
		return nil
	}

	group, err = rc.repo.GetGroupByID(id)
	if err != nil {
		return nil
	}

	rc.mu.Lock()
	rc.groups[groupID] = group
	rc.mu.Unlock()

	return group
}

// Join adds a connection to the routing room for groupID.
func (rc *RosterCache) Join(groupID string, c *Client) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.rooms[groupID] == nil {
		rc.rooms[groupID] = make(map[*Client]bool)
	}
	rc.rooms[groupID][c] = true
}

// RoomTargets returns the connections currently joined to the room.
func (rc *RosterCache) RoomTargets(groupID string) []*Client {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	room := rc.rooms[groupID]
	targets := make([]*Client, 0, len(room))
	for c := range room {
		targets = append(targets, c)
	}
	return targets
}

// RemoveClient drops a severed connection from every room it joined.
func (rc *RosterCache) RemoveClient(c *Client) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	for groupID, room := range rc.rooms {
		if room[c] {
			delete(room, c)
			if len(room) == 0 {
				delete(rc.rooms, groupID)
			}
		}
	}
}

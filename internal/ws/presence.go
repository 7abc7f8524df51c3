// internal/ws/presence.go
package ws

import "sync"

// PresenceRegistry maps userId to the live connection that is authoritative
// for routing. Last writer wins: a later online signal for the same userId
// overwrites the earlier connection, multi-device fan-out is not supported.
//
// Each operation is indivisible under the mutex. No atomicity is guaranteed
// across multiple operations invoked by the same handler.
type PresenceRegistry struct {
	mu      sync.RWMutex
	entries map[string]*presenceEntry
}

type presenceEntry struct {
	user   PresenceUser
	client *Client
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		entries: make(map[string]*presenceEntry),
	}
}

// SetOnline inserts or overwrites the entry for the client's user and returns
// the full snapshot for broadcast.
func (r *PresenceRegistry) SetOnline(c *Client) []PresenceUser {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[c.UserID] = &presenceEntry{
		user: PresenceUser{
			UserID:      c.UserID,
			Username:    c.Username,
			ProfileName: c.ProfileName,
			DisplayName: c.DisplayName,
			SocketID:    c.SocketID,
			Online:      true,
		},
		client: c,
	}

	return r.snapshotLocked()
}

// Lookup resolves a userId to its live connection. The second return is false
// when the peer is not currently reachable.
func (r *PresenceRegistry) Lookup(userID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[userID]
	if !ok {
		return nil, false
	}
	return entry.client, true
}

// Remove drops the entry for userID and returns the remaining snapshot.
func (r *PresenceRegistry) Remove(userID string) []PresenceUser {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, userID)
	return r.snapshotLocked()
}

// Snapshot returns the current presence list.
func (r *PresenceRegistry) Snapshot() []PresenceUser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *PresenceRegistry) snapshotLocked() []PresenceUser {
	users := make([]PresenceUser, 0, len(r.entries))
	for _, entry := range r.entries {
		users = append(users, entry.user)
	}
	return users
}

package tui

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// SessionID uniquely identifies an SSH connection.
type SessionID string

// SessionInfo describes a connected player.
type SessionInfo struct {
	ID      SessionID
	User    string
	Remote  string
	Started time.Time
}

// SessionRegistry tracks active SSH sessions.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	limit    int // 0 means unlimited
	seq      uint64
	sessions map[SessionID]SessionInfo
}

// NewSessionRegistry creates a registry admitting at most limit sessions.
func NewSessionRegistry(limit int) *SessionRegistry {
	return &SessionRegistry{
		limit:    limit,
		sessions: make(map[SessionID]SessionInfo),
	}
}

// Register adds a session and returns its ID.
// It reports false when the registry is full.
func (r *SessionRegistry) Register(user, remote string, now time.Time) (SessionID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.limit > 0 && len(r.sessions) >= r.limit {
		return "", false
	}
	r.seq++
	id := SessionID(fmt.Sprintf("%s-%d", user, r.seq))
	r.sessions[id] = SessionInfo{ID: id, User: user, Remote: remote, Started: now}
	return id, true
}

// Unregister removes a session from the registry.
func (r *SessionRegistry) Unregister(id SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns the active sessions, oldest first.
func (r *SessionRegistry) List() []SessionInfo {
	r.mu.RLock()
	out := make([]SessionInfo, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].ID < out[j].ID
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out
}

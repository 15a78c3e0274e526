package session

import (
	"sort"
	"sync"
)

// Registry tracks the sessions currently being played, keyed by an owner
// id such as an SSH connection. Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Track records s as the active session of owner, replacing any previous one.
func (r *Registry) Track(owner string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[owner] = s
}

// Untrack forgets owner's session.
func (r *Registry) Untrack(owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, owner)
}

// Get retrieves owner's active session.
func (r *Registry) Get(owner string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[owner]
	return s, ok
}

// Count returns the number of active sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Levels returns how many active sessions are on each level key.
func (r *Registry) Levels() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int)
	for _, s := range r.sessions {
		out[s.Key()]++
	}
	return out
}

// Owners returns the tracked owner ids in sorted order.
func (r *Registry) Owners() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

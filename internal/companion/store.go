package companion

import (
	"log"
	"sync"
)

// Repository persists user snapshots. Implementations must be safe for
// concurrent use.
type Repository interface {
	SaveUser(userID string, mem UserMemory) error
	LoadUsers() (map[string]UserMemory, error)
}

// Store owns every known UserState. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users map[string]*UserState
	repo  Repository
}

// NewStore loads all persisted users through repo. A nil repo keeps the store
// memory-only.
func NewStore(repo Repository) *Store {
	s := &Store{
		users: make(map[string]*UserState),
		repo:  repo,
	}
	if repo != nil {
		saved, err := repo.LoadUsers()
		if err != nil {
			log.Printf("[COMPANION] load users failed: %v", err)
		}
		for id, mem := range saved {
			s.users[id] = newUserState(id, mem)
		}
	}
	return s
}

// User returns the state for userID, creating it with defaults on first
// contact. The display name hint is only used at creation; it may go stale.
func (s *Store) User(userID, displayNameHint string) *UserState {
	s.mu.RLock()
	u := s.users[userID]
	s.mu.RUnlock()
	if u != nil {
		return u
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if u = s.users[userID]; u != nil {
		return u
	}
	u = newUserState(userID, UserMemory{DisplayName: displayNameHint, Mood: MoodNeutral})
	s.users[userID] = u
	return u
}

// Lookup returns the state for userID without creating it.
func (s *Store) Lookup(userID string) (*UserState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	return u, ok
}

// All returns every known user state (scheduler sweep).
func (s *Store) All() []*UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*UserState, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

// Save persists u's snapshot. A write failure is logged; the in-memory state
// stays authoritative, so the engine is available but possibly not durable.
func (s *Store) Save(u *UserState) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveUser(u.ID, u.Snapshot()); err != nil {
		log.Printf("[COMPANION] save failed user=%s: %v", u.ID, err)
	}
}

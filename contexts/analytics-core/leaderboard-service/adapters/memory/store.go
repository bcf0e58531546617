package memory

import (
	"context"
	"sync"

	"clubtrack/contexts/analytics-core/leaderboard-service/ports"
)

// Store keeps roster snapshots in memory for tests and local runs.
type Store struct {
	mu    sync.RWMutex
	users map[string]ports.UserSnapshot
}

func NewStore(seed []ports.UserSnapshot) *Store {
	store := &Store{users: make(map[string]ports.UserSnapshot, len(seed))}
	for _, user := range seed {
		store.users[user.UserID] = cloneUser(user)
	}
	return store
}

func (s *Store) SeedUser(user ports.UserSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = cloneUser(user)
}

func (s *Store) SnapshotUsers(_ context.Context) ([]ports.UserSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]ports.UserSnapshot, 0, len(s.users))
	for _, user := range s.users {
		snapshot = append(snapshot, cloneUser(user))
	}
	return snapshot, nil
}

func cloneUser(user ports.UserSnapshot) ports.UserSnapshot {
	clone := user
	clone.Platforms = make(map[string]ports.PlatformSnapshot, len(user.Platforms))
	for name, platform := range user.Platforms {
		clone.Platforms[name] = platform
	}
	return clone
}

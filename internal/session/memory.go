package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore keeps sessions in a size-bounded LRU with a fixed TTL.
// Sessions do not survive a restart.
type MemoryStore struct {
	cache *expirable.LRU[string, Session]
}

// NewMemoryStore creates a store holding at most size sessions for ttl each
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: expirable.NewLRU[string, Session](size, nil, ttl)}
}

// Get returns a copy of the stored session
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

// Save stores a copy of s, resetting its TTL
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.cache.Add(s.ID, *s)
	return nil
}

// Delete removes the session if present
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}

// Len returns the number of live sessions
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

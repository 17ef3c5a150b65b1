package preferences

import (
	"context"
	"sync"

	"github.com/zatekoja/arovia/web/internal/domain/providers"
)

// MemoryStore keeps preferences in process memory. Used when Redis is off.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory preference store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get retrieves a stored preference
func (s *MemoryStore) Get(ctx context.Context, owner, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[storageKey(owner, key)]
	if !ok {
		return "", providers.ErrPreferenceNotSet
	}
	return value, nil
}

// Set stores a preference
func (s *MemoryStore) Set(ctx context.Context, owner, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[storageKey(owner, key)] = value
	return nil
}

// storageKey matches the Redis layout, e.g. arovia_language:<owner>
func storageKey(owner, key string) string {
	return key + ":" + owner
}

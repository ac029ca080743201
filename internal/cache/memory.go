package cache

import (
	"context"
	"path"
	"strings"
	"sync"
	"time"
)

// memoryEntry is one stored value with its expiration deadline.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// expired reports whether the entry is past its deadline.
func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore is an in-process KeyValueStore used when Redis is disabled and
// in tests. Expired entries are dropped lazily on read; there is no janitor.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get retrieves the value for key. A missing or expired key is (nil, false, nil).
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set stores value under key. A non-positive TTL means no expiration.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

// Keys returns all live keys matching the glob pattern, with Redis KEYS
// semantics: no character is a separator.
func (s *MemoryStore) Keys(_ context.Context, pattern string) ([]string, error) {
	now := time.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k, e := range s.entries {
		if e.expired(now) {
			continue
		}
		match, err := matchGlob(pattern, k)
		if err != nil {
			return nil, err
		}
		if match {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// matchGlob matches with path.Match but without its path-separator rule:
// '*' in a Redis KEYS pattern crosses slashes, and cache keys can carry
// slashes when argument values do. NUL cannot occur in a key, so mapping
// '/' to NUL on both sides removes the special case.
func matchGlob(pattern, key string) (bool, error) {
	const sub = "\x00"
	return path.Match(
		strings.ReplaceAll(pattern, "/", sub),
		strings.ReplaceAll(key, "/", sub),
	)
}

// Check reports the store as always healthy.
func (s *MemoryStore) Check() error {
	return nil
}

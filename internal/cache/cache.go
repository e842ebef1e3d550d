// Package cache provides a small in-process TTL key-value store used to
// memoize assembled rankings per query scope.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store maps string keys to values with a per-entry expiry. Expiry is lazy:
// an expired entry is treated as a miss at read time, there is no eviction
// goroutine. Safe for concurrent use; concurrent misses for the same key may
// race, last write wins.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	now     func() time.Time
}

// New creates an empty store.
func New[V any]() *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// NewWithClock creates a store with an injected clock, for tests.
func NewWithClock[V any](now func() time.Time) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		now:     now,
	}
}

// Get returns the cached value for key. The second return value is false when
// the key is absent or its entry has expired.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || s.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with expiry now+ttl, overwriting any prior
// entry for that key.
func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

// Delete removes the entry for key, if any.
func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Len reports the number of entries, including not-yet-collected expired ones.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

package idempotency

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is a process-local Cache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Entry)}
}

func (m *MemoryCache) Acquire(_ context.Context, key string, now time.Time, window, _ time.Duration) (*Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[key]; ok {
		if e.State == StateInProgress || now.Sub(e.UpdatedAt) < window {
			return &e, false, nil
		}
	}
	m.entries[key] = Entry{State: StateInProgress, UpdatedAt: now}
	return nil, true, nil
}

func (m *MemoryCache) Complete(_ context.Context, key string, now time.Time, result []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = Entry{State: StateCompleted, UpdatedAt: now, Result: result}
	return nil
}

func (m *MemoryCache) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryCache) Purge(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for key, e := range m.entries {
		if e.UpdatedAt.Before(cutoff) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of tracked keys.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

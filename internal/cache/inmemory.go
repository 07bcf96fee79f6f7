package cache

import (
	"context"
	"sync"
	"time"
)

// Verify interface compliance
var _ Cache = (*Memory)(nil)

// Memory is the default per-instance cache. Each running instance keeps its
// own entries and its own TTL clock; there is no cross-instance coherence.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates an in-memory cache with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if e.expired(m.now(), m.ttl) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", false
	}
	return e.value, true
}

func (m *Memory) Put(ctx context.Context, key, value string) error {
	m.mu.Lock()
	m.entries[key] = entry{value: value, createdAt: m.now()}
	m.mu.Unlock()
	return nil
}

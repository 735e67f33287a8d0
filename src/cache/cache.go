// Package cache provides the memoization store for web lookups: a bounded
// in-process map for single-instance runs, or Redis when the front-ends
// share one deployment. Values are immutable summary strings, so racing
// writers are harmless.
package cache

import (
	"context"
	"sync"
)

// Store maps a lookup query to its previously computed summary. A Store is
// best-effort: failures surface as misses, never as request errors.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// Memory is a bounded in-process store with FIFO eviction.
type Memory struct {
	mu      sync.Mutex
	max     int
	entries map[string]string
	order   []string
}

func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &Memory{
		max:     maxEntries,
		entries: make(map[string]string),
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *Memory) Set(_ context.Context, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		m.entries[key] = value
		return
	}
	if len(m.order) >= m.max {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
	m.entries[key] = value
	m.order = append(m.order, key)
}

// Len reports the number of cached entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Package mistakes tracks how often the learner has missed each prompt.
package mistakes

import (
	"context"
	"maps"
	"sync"
)

// Record maps a prompt id to its miss count.
type Record map[string]int

// Count returns the miss count for id, or 0 when the id was never missed.
func (r Record) Count(id string) int {
	return r[id]
}

// Store persists miss counts. Counts only ever go up; Increment creates
// the entry on the first miss.
type Store interface {
	Count(ctx context.Context, id string) (int, error)
	Increment(ctx context.Context, id string) error
	Snapshot(ctx context.Context) (Record, error)
}

// MemStore is an in-memory Store.
type MemStore struct {
	mu     sync.Mutex
	counts Record
}

// NewMemStore returns an empty MemStore, optionally seeded from initial.
func NewMemStore(initial Record) *MemStore {
	counts := make(Record, len(initial))
	maps.Copy(counts, initial)
	return &MemStore{counts: counts}
}

func (m *MemStore) Count(_ context.Context, id string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[id], nil
}

func (m *MemStore) Increment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[id]++
	return nil
}

// Snapshot returns a copy; mutating it does not affect the store.
func (m *MemStore) Snapshot(_ context.Context) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.counts), nil
}

var _ Store = (*MemStore)(nil)

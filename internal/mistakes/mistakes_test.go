package mistakes

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCount(t *testing.T) {
	r := Record{"a": 2}
	assert.Equal(t, 2, r.Count("a"))
	assert.Equal(t, 0, r.Count("missing"))

	var nilRecord Record
	assert.Equal(t, 0, nilRecord.Count("a"))
}

func TestMemStore_IncrementCreatesLazily(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(nil)

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap)

	require.NoError(t, s.Increment(ctx, "p1"))
	require.NoError(t, s.Increment(ctx, "p1"))

	n, err := s.Count(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemStore_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	seed := Record{"p1": 1}
	s := NewMemStore(seed)
	seed["p1"] = 99

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	snap["p1"] = 42

	n, _ := s.Count(ctx, "p1")
	assert.Equal(t, 1, n)
}

func TestMemStore_ConcurrentIncrement(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(nil)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Increment(ctx, "p")
		}()
	}
	wg.Wait()

	n, _ := s.Count(ctx, "p")
	assert.Equal(t, 50, n)
}

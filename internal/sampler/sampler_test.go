package sampler

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/mistakes"
)

func makePool(n int) []catalog.Prompt {
	pool := make([]catalog.Prompt, n)
	for i := range pool {
		lang := "en-US"
		if i%2 == 1 {
			lang = "de-DE"
		}
		pool[i] = catalog.Prompt{ID: fmt.Sprintf("p%02d", i), Language: lang, Text: "t", Category: "c"}
	}
	return pool
}

func ids(ps []catalog.Prompt) map[string]bool {
	out := make(map[string]bool, len(ps))
	for _, p := range ps {
		out[p.ID] = true
	}
	return out
}

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestSample_Size(t *testing.T) {
	pool := makePool(20)
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"smaller than pool", 5, 5},
		{"equal to pool", 20, 20},
		{"larger than pool", 50, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(pool, tt.count, mistakes.Record{}, seeded(1))
			assert.Len(t, got, tt.want)
			assert.Len(t, ids(got), tt.want, "ids must be distinct")
		})
	}
}

func TestSample_EmptyPool(t *testing.T) {
	got := Sample(nil, 10, mistakes.Record{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSample_BoostCappedAtFive(t *testing.T) {
	pool := makePool(20)
	rec := mistakes.Record{}
	for i := range 7 {
		rec[pool[i].ID] = 10 - i
	}

	for seed := range uint64(25) {
		got := ids(Sample(pool, 10, rec, seeded(seed)))
		for i := range 5 {
			assert.True(t, got[pool[i].ID], "top-5 missed prompt %s must be present", pool[i].ID)
		}
		missed := 0
		for id := range rec {
			if got[id] {
				missed++
			}
		}
		assert.LessOrEqual(t, missed, MaxBoosted)
	}
}

func TestSample_OverflowFillsSmallPool(t *testing.T) {
	pool := makePool(8)
	rec := mistakes.Record{}
	for i := range 7 {
		rec[pool[i].ID] = 1
	}

	got := Sample(pool, 8, rec, seeded(5))
	assert.Len(t, ids(got), 8)
}

func TestSample_BoostCappedAtCount(t *testing.T) {
	pool := makePool(20)
	rec := mistakes.Record{}
	for i := range 7 {
		rec[pool[i].ID] = 10 - i
	}

	got := Sample(pool, 3, rec, seeded(7))
	require.Len(t, got, 3)
	assert.Equal(t, map[string]bool{"p00": true, "p01": true, "p02": true}, ids(got))
}

func TestSample_DoesNotMutateInputs(t *testing.T) {
	pool := makePool(10)
	orig := make([]catalog.Prompt, len(pool))
	copy(orig, pool)
	rec := mistakes.Record{"p03": 2}

	_ = Sample(pool, 6, rec, seeded(3))

	assert.Equal(t, orig, pool)
	assert.Equal(t, mistakes.Record{"p03": 2}, rec)
}

func TestSample_Filters(t *testing.T) {
	pool := makePool(10)
	got := Sample(pool, 10, nil, WithLanguage("de-DE"), seeded(2))
	require.Len(t, got, 5)
	for _, p := range got {
		assert.Equal(t, "de-DE", p.Language)
	}

	got = Sample(pool, 10, nil, WithCategory("nope"))
	assert.Empty(t, got)
}

func TestSample_DuplicateIDsCollapsed(t *testing.T) {
	pool := []catalog.Prompt{
		{ID: "a", Language: "en-US", Text: "first"},
		{ID: "a", Language: "en-US", Text: "second"},
		{ID: "b", Language: "en-US", Text: "b"},
	}
	got := Sample(pool, 5, nil, seeded(4))
	require.Len(t, got, 2)
	for _, p := range got {
		if p.ID == "a" {
			assert.Equal(t, "first", p.Text)
		}
	}
}

func TestSample_ReproducibleWithSeed(t *testing.T) {
	pool := makePool(15)
	a := Sample(pool, 8, nil, seeded(99))
	b := Sample(pool, 8, nil, seeded(99))
	assert.Equal(t, a, b)
}

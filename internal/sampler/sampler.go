// Package sampler picks the prompts for a practice round, biased toward
// prompts the learner has missed before.
package sampler

import (
	"math/rand/v2"
	"sort"

	"github.com/abhisek/echoz/internal/catalog"
)

// MaxBoosted caps how many previously-missed prompts a round may be seeded with.
const MaxBoosted = 5

// Counter reports miss counts per prompt id. mistakes.Record satisfies it.
type Counter interface {
	Count(id string) int
}

type options struct {
	language string
	category string
	rng      *rand.Rand
}

// Option configures Sample.
type Option func(*options)

// WithLanguage keeps only prompts with the given language tag.
func WithLanguage(tag string) Option {
	return func(o *options) { o.language = tag }
}

// WithCategory keeps only prompts in the given category.
func WithCategory(category string) Option {
	return func(o *options) { o.category = category }
}

// WithRand sets the random source. Tests use a seeded source for
// reproducible rounds.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// Sample returns min(count, len(filtered pool)) distinct prompts. Up to
// MaxBoosted of the most-missed prompts are always included; the rest are
// drawn uniformly without replacement from the remaining prompts, and the
// result is shuffled.
// Neither pool nor mistakes is modified.
func Sample(pool []catalog.Prompt, count int, mistakes Counter, opts ...Option) []catalog.Prompt {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if count <= 0 {
		return []catalog.Prompt{}
	}

	candidates := dedupe(catalog.Filter(pool, o.language, o.category))

	missCount := func(p catalog.Prompt) int {
		if mistakes == nil {
			return 0
		}
		return mistakes.Count(p.ID)
	}

	ranked := make([]catalog.Prompt, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return missCount(ranked[i]) > missCount(ranked[j])
	})

	limit := min(MaxBoosted, count)
	boosted := make([]catalog.Prompt, 0, limit)
	for _, p := range ranked {
		if len(boosted) == limit || missCount(p) <= 0 {
			break
		}
		boosted = append(boosted, p)
	}

	picked := make(map[string]bool, len(boosted))
	for _, p := range boosted {
		picked[p.ID] = true
	}

	// Missed prompts beyond the boost cap are only drawn once the never-missed
	// prompts run out, so a round never carries more than MaxBoosted of them
	// unless the pool is too small to fill it otherwise.
	var fresh, overflow []catalog.Prompt
	for _, p := range candidates {
		switch {
		case picked[p.ID]:
		case missCount(p) > 0:
			overflow = append(overflow, p)
		default:
			fresh = append(fresh, p)
		}
	}

	shuffle := rand.Shuffle
	if o.rng != nil {
		shuffle = o.rng.Shuffle
	}
	swap := func(s []catalog.Prompt) func(i, j int) {
		return func(i, j int) { s[i], s[j] = s[j], s[i] }
	}

	shuffle(len(fresh), swap(fresh))
	shuffle(len(overflow), swap(overflow))
	rest := append(fresh, overflow...)
	need := min(count-len(boosted), len(rest))

	out := make([]catalog.Prompt, 0, len(boosted)+need)
	out = append(out, boosted...)
	out = append(out, rest[:need]...)
	shuffle(len(out), swap(out))
	return out
}

// dedupe drops repeated ids, keeping the first occurrence.
func dedupe(pool []catalog.Prompt) []catalog.Prompt {
	seen := make(map[string]bool, len(pool))
	out := pool[:0:0]
	for _, p := range pool {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

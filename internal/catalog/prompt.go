// Package catalog holds the static prompts learners practice with.
package catalog

import "sort"

// Prompt is a single sentence the learner is asked to repeat.
// Prompts are immutable; ID is the identity used for mistake tracking.
type Prompt struct {
	ID       string `yaml:"id"`
	Language string `yaml:"language"` // BCP-47 tag, e.g. "en-US"
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
}

// Filter returns the prompts matching language and category. An empty
// filter value matches everything. The input slice is not modified.
func Filter(pool []Prompt, language, category string) []Prompt {
	out := make([]Prompt, 0, len(pool))
	for _, p := range pool {
		if language != "" && p.Language != language {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Languages returns the distinct language tags in pool, sorted.
func Languages(pool []Prompt) []string {
	return distinct(pool, func(p Prompt) string { return p.Language })
}

// Categories returns the distinct categories in pool, sorted.
func Categories(pool []Prompt) []string {
	return distinct(pool, func(p Prompt) string { return p.Category })
}

func distinct(pool []Prompt, key func(Prompt) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range pool {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Package coach turns a missed attempt into a short pronunciation tip.
//
// A word-level comparison runs synchronously and always produces feedback.
// When an LLM provider is configured, a richer tip is requested in the
// background and delivered through a callback.
package coach

import "github.com/abhisek/echoz/internal/similarity"

// Focus names the area a tip asks the speaker to work on.
type Focus string

const (
	FocusMissingWords Focus = "missing-words"
	FocusExtraWords   Focus = "extra-words"
	FocusVowels       Focus = "vowels"
	FocusConsonants   Focus = "consonants"
	FocusWordEndings  Focus = "word-endings"
	FocusRhythm       Focus = "rhythm"
	FocusOther        Focus = "other"
)

// Source says which path produced a Feedback.
type Source string

const (
	SourceRules Source = "rules"
	SourceLLM   Source = "llm"
)

// Request describes one scored attempt.
type Request struct {
	PromptID   string
	Language   string
	Expected   string
	Heard      string
	Similarity float64
	Tier       similarity.Tier
}

// Feedback is a tip for the speaker.
type Feedback struct {
	PromptID string
	Source   Source
	Focus    Focus
	Tip      string

	// Word-level differences, in target order for Missed and heard order
	// for Extra.
	Missed []string
	Extra  []string
}

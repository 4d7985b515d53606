// Package practice runs a round of spoken prompts: it samples prompts,
// scores each finished recording session, keeps the running total and
// mistake counts, and persists what happened.
package practice

import (
	"time"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/coach"
	"github.com/abhisek/echoz/internal/recording"
	"github.com/abhisek/echoz/internal/similarity"
)

// Round is the state of one practice round. It is not safe for
// concurrent use; the TUI and CLI drive it from a single goroutine.
type Round struct {
	ID       string
	Language string
	Category string
	Prompts  []catalog.Prompt

	// Index of the prompt being practiced.
	Index int

	StartTotal int
	Total      int
	Attempts   []Attempt

	StartTime time.Time
	Elapsed   time.Duration
	Ended     bool

	handled map[string]bool // recording session ids already scored
}

// Attempt is one handled recording result.
type Attempt struct {
	Prompt  catalog.Prompt
	Result  recording.Result
	Scored  bool
	Outcome similarity.Outcome

	// ScoreApplied is the change to the total after flooring at zero.
	ScoreApplied int

	// Feedback is the immediate coaching for a missed attempt, if any.
	Feedback *coach.Feedback
}

// Missed reports whether the attempt was scored below the success tier.
func (a Attempt) Missed() bool {
	return a.Scored && !a.Outcome.Success()
}

// Current returns the prompt being practiced, or false once the round has
// run past its last prompt.
func Current(r *Round) (catalog.Prompt, bool) {
	if r == nil || r.Index < 0 || r.Index >= len(r.Prompts) {
		return catalog.Prompt{}, false
	}
	return r.Prompts[r.Index], true
}

// Advance moves to the next prompt and reports whether there is one.
func Advance(r *Round) bool {
	if r.Index < len(r.Prompts) {
		r.Index++
	}
	return r.Index < len(r.Prompts)
}

// Remaining returns how many prompts are left including the current one.
func Remaining(r *Round) int {
	return max(0, len(r.Prompts)-r.Index)
}

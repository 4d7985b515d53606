package recording

import (
	"time"

	"github.com/abhisek/echoz/internal/catalog"
)

// State is a RecordingSession lifecycle state.
type State int

const (
	Idle State = iota
	AwaitingPermission
	Listening
	Finalizing
	Scored
	Cancelled
	FatalError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingPermission:
		return "awaiting_permission"
	case Listening:
		return "listening"
	case Finalizing:
		return "finalizing"
	case Scored:
		return "scored"
	case Cancelled:
		return "cancelled"
	case FatalError:
		return "fatal_error"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is an end state.
func (s State) Terminal() bool {
	return s == Scored || s == Cancelled || s == FatalError
}

// Update is delivered to transcript listeners on every interim or final
// fragment.
type Update struct {
	Kind       EventKind // EventInterim or EventFinal
	Fragment   string
	Transcript string // accumulated final transcript
	Interim    string // current interim text, empty after a final
}

// Text is what a live display should show.
func (u Update) Text() string {
	switch {
	case u.Transcript == "":
		return u.Interim
	case u.Interim == "":
		return u.Transcript
	default:
		return u.Transcript + " " + u.Interim
	}
}

// Result is delivered exactly once when a session ends.
type Result struct {
	SessionID string
	Prompt    catalog.Prompt
	State     State // Scored, Cancelled or FatalError

	// Transcript and Artifact are set for Scored results.
	Transcript string
	Artifact   AudioArtifact

	// Err is nil for Scored, ErrEmptyUtterance or ErrCancelled for
	// Cancelled, and the cause for FatalError.
	Err error

	// Listened is the time spent in Listening.
	Listened time.Duration
}

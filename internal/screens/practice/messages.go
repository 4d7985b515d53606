package practice

import (
	"time"

	"github.com/abhisek/echoz/internal/coach"
	prac "github.com/abhisek/echoz/internal/practice"
	"github.com/abhisek/echoz/internal/recording"
)

// inboxMsg carries a message posted from a recording or coach goroutine.
type inboxMsg struct {
	inner any
}

// roundReadyMsg is sent when the round's prompts have been sampled.
type roundReadyMsg struct {
	Round *prac.Round
	Err   error
}

// transcriptMsg is a live transcript fragment.
type transcriptMsg struct {
	SessionID string
	Update    recording.Update
}

// sessionEndedMsg carries the finished recording.
type sessionEndedMsg struct {
	Result recording.Result
}

// attemptMsg is sent once a result has been scored and persisted.
type attemptMsg struct {
	Attempt prac.Attempt
	Total   int
	Err     error
}

// tipMsg is a coach tip that arrived after the feedback was shown.
type tipMsg struct {
	SessionID string
	Feedback  *coach.Feedback
}

// roundEndedMsg is sent when the round has been closed and summarised.
type roundEndedMsg struct {
	Summary *prac.Summary
	Err     error
}

// tickMsg refreshes the time bar while a session runs.
type tickMsg struct {
	At    time.Time
	State recording.State
}

package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures learner totals at a point in time.
type SnapshotData struct {
	Version      int `json:"version"`
	TotalScore   int `json:"total_score"`
	RoundsPlayed int `json:"rounds_played"`
	Attempts     int `json:"attempts"`
	Excellent    int `json:"excellent"`
}

// Snapshot represents a point-in-time capture of learner totals.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// Attempt outcomes.
const (
	OutcomeScored    = "scored"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// AttemptEventData captures one spoken attempt.
type AttemptEventData struct {
	RoundID      string
	SessionID    string
	PromptID     string
	Language     string
	Category     string
	ExpectedText string
	Transcript   string
	Outcome      string // OutcomeScored, OutcomeCancelled or OutcomeFailed
	Tier         string
	Similarity   float64
	ScoreDelta   int
	ListenedMs   int64
	ErrorMessage string
}

// AttemptRecord is a stored attempt.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// RoundEventData captures a round start or end.
type RoundEventData struct {
	RoundID   string
	Action    string // "start" or "end"
	Language  string
	Category  string
	PromptIDs []string // start only

	// End only.
	PromptsServed int
	Excellent     int
	Close         int
	Retry         int
	Unscored      int
	ScoreGained   int
	TotalScore    int
	DurationSecs  int
}

// RoundSummaryRecord is the end-of-round summary shown in history.
type RoundSummaryRecord struct {
	RoundID       string
	Timestamp     time.Time
	Language      string
	Category      string
	PromptsServed int
	Excellent     int
	Close         int
	Retry         int
	Unscored      int
	ScoreGained   int
	TotalScore    int
	DurationSecs  int
}

// Accuracy is the share of scored attempts that were excellent.
func (r RoundSummaryRecord) Accuracy() float64 {
	scored := r.Excellent + r.Close + r.Retry
	if scored == 0 {
		return 0
	}
	return float64(r.Excellent) / float64(scored)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendRoundEvent(ctx context.Context, data RoundEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryAttempts returns attempts, newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// RoundSummaries returns completed rounds, newest first.
	RoundSummaries(ctx context.Context, opts QueryOpts) ([]RoundSummaryRecord, error)

	// LatestScore returns the running total recorded by the last round,
	// or 0 if no round has ended yet.
	LatestScore(ctx context.Context) (int, error)

	// PromptAccuracy returns the excellent share and the number of scored
	// attempts for a prompt.
	PromptAccuracy(ctx context.Context, promptID string) (float64, int, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
	// GetLLMEvent returns nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

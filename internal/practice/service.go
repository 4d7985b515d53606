package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/coach"
	"github.com/abhisek/echoz/internal/mistakes"
	"github.com/abhisek/echoz/internal/observe"
	"github.com/abhisek/echoz/internal/recording"
	"github.com/abhisek/echoz/internal/sampler"
	"github.com/abhisek/echoz/internal/similarity"
	"github.com/abhisek/echoz/internal/store"
)

var (
	// ErrNoPrompts is returned by Begin when the filtered pool is empty.
	ErrNoPrompts = errors.New("no prompts match the selected language and category")

	// ErrAlreadyHandled is returned when a session's result is handled twice.
	ErrAlreadyHandled = errors.New("recording result already handled")

	// ErrRoundEnded is returned for operations on an ended round.
	ErrRoundEnded = errors.New("round already ended")
)

// snapshotsKept bounds how many learner snapshots End leaves behind.
const snapshotsKept = 20

// Deps wires a Service. Mistakes is required; the rest may be nil.
type Deps struct {
	Mistakes  mistakes.Store
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Coach     *coach.Service
	Metrics   *observe.Metrics
	Logger    *slog.Logger
	Now       func() time.Time
}

// Service applies the scoring policy to rounds.
type Service struct {
	deps Deps
}

// NewService creates a Service.
func NewService(deps Deps) *Service {
	if deps.Mistakes == nil {
		deps.Mistakes = mistakes.NewMemStore(nil)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Service{deps: deps}
}

// Setup selects what a round practices.
type Setup struct {
	Language string
	Category string
	Count    int

	// Extra sampler options, e.g. sampler.WithRand in tests.
	SamplerOptions []sampler.Option
}

// Begin samples prompts from pool, biased toward past mistakes, and
// records the round start.
func (s *Service) Begin(ctx context.Context, pool []catalog.Prompt, setup Setup) (*Round, error) {
	record, err := s.deps.Mistakes.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}

	opts := append([]sampler.Option{
		sampler.WithLanguage(setup.Language),
		sampler.WithCategory(setup.Category),
	}, setup.SamplerOptions...)
	prompts := sampler.Sample(pool, setup.Count, record, opts...)
	if len(prompts) == 0 {
		return nil, ErrNoPrompts
	}

	total, err := s.latestTotal(ctx)
	if err != nil {
		return nil, err
	}

	r := &Round{
		ID:         uuid.New().String(),
		Language:   setup.Language,
		Category:   setup.Category,
		Prompts:    prompts,
		StartTotal: total,
		Total:      total,
		StartTime:  s.deps.Now(),
		handled:    make(map[string]bool),
	}

	if s.deps.Events != nil {
		ids := make([]string, len(prompts))
		for i, p := range prompts {
			ids[i] = p.ID
		}
		err := s.deps.Events.AppendRoundEvent(ctx, store.RoundEventData{
			RoundID:   r.ID,
			Action:    "start",
			Language:  r.Language,
			Category:  r.Category,
			PromptIDs: ids,
		})
		if err != nil {
			s.deps.Logger.Warn("persist round start", "round", r.ID, "err", err)
		}
	}
	s.deps.Logger.Info("round started", "round", r.ID, "prompts", len(prompts), "total", total)
	return r, nil
}

func (s *Service) latestTotal(ctx context.Context) (int, error) {
	if s.deps.Snapshots != nil {
		snap, err := s.deps.Snapshots.Latest(ctx)
		if err != nil {
			return 0, fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			return snap.Data.TotalScore, nil
		}
	}
	if s.deps.Events != nil {
		total, err := s.deps.Events.LatestScore(ctx)
		if err != nil {
			return 0, fmt.Errorf("load score: %w", err)
		}
		return total, nil
	}
	return 0, nil
}

// HandleResult applies a finished recording session to r. A Scored result
// is evaluated against its prompt, the delta is applied with a floor of
// zero and a miss increments the prompt's mistake count once. Cancelled
// and failed sessions leave score and mistakes untouched but are still
// recorded for history.
//
// onTip, when set, receives an LLM tip for a missed attempt later on
// another goroutine.
func (s *Service) HandleResult(ctx context.Context, r *Round, res recording.Result, onTip func(*coach.Feedback)) (Attempt, error) {
	if r.Ended {
		return Attempt{}, ErrRoundEnded
	}
	if res.SessionID != "" && r.handled[res.SessionID] {
		return Attempt{}, ErrAlreadyHandled
	}
	if r.handled == nil {
		r.handled = make(map[string]bool)
	}
	r.handled[res.SessionID] = true

	a := Attempt{Prompt: res.Prompt, Result: res}
	ev := store.AttemptEventData{
		RoundID:      r.ID,
		SessionID:    res.SessionID,
		PromptID:     res.Prompt.ID,
		Language:     res.Prompt.Language,
		Category:     res.Prompt.Category,
		ExpectedText: res.Prompt.Text,
		Transcript:   res.Transcript,
		ListenedMs:   res.Listened.Milliseconds(),
	}

	var errs []error
	switch res.State {
	case recording.Scored:
		a.Scored = true
		a.Outcome = similarity.Evaluate(res.Prompt.Text, res.Transcript)
		before := r.Total
		r.Total = similarity.ApplyDelta(r.Total, a.Outcome.ScoreDelta)
		a.ScoreApplied = r.Total - before

		ev.Outcome = store.OutcomeScored
		ev.Tier = string(a.Outcome.Tier)
		ev.Similarity = a.Outcome.Similarity
		ev.ScoreDelta = a.ScoreApplied

		s.deps.Metrics.AttemptScored(ctx, a.Outcome.Similarity, string(a.Outcome.Tier))

		if !a.Outcome.Success() {
			if err := s.deps.Mistakes.Increment(ctx, res.Prompt.ID); err != nil {
				errs = append(errs, fmt.Errorf("record mistake for %s: %w", res.Prompt.ID, err))
			}
			a.Feedback = s.advise(ctx, a, onTip)
		}
	case recording.Cancelled:
		ev.Outcome = store.OutcomeCancelled
	default:
		ev.Outcome = store.OutcomeFailed
	}
	if res.Err != nil {
		ev.ErrorMessage = res.Err.Error()
	}

	r.Attempts = append(r.Attempts, a)

	if s.deps.Events != nil {
		if err := s.deps.Events.AppendAttemptEvent(ctx, ev); err != nil {
			errs = append(errs, fmt.Errorf("persist attempt: %w", err))
		}
	}

	s.deps.Logger.Info("attempt handled",
		"round", r.ID,
		"prompt", res.Prompt.ID,
		"outcome", ev.Outcome,
		"tier", ev.Tier,
		"similarity", ev.Similarity,
		"total", r.Total,
	)
	return a, errors.Join(errs...)
}

func (s *Service) advise(ctx context.Context, a Attempt, onTip func(*coach.Feedback)) *coach.Feedback {
	if s.deps.Coach == nil {
		return nil
	}
	return s.deps.Coach.Advise(ctx, coach.Request{
		PromptID:   a.Prompt.ID,
		Language:   a.Prompt.Language,
		Expected:   a.Prompt.Text,
		Heard:      a.Result.Transcript,
		Similarity: a.Outcome.Similarity,
		Tier:       a.Outcome.Tier,
	}, onTip)
}

// End closes r, records the round end and saves a learner snapshot.
// Calling End twice returns ErrRoundEnded.
func (s *Service) End(ctx context.Context, r *Round) (*Summary, error) {
	if r.Ended {
		return nil, ErrRoundEnded
	}
	r.Ended = true
	r.Elapsed = s.deps.Now().Sub(r.StartTime)
	sum := BuildSummary(r)

	var errs []error
	if s.deps.Events != nil {
		err := s.deps.Events.AppendRoundEvent(ctx, store.RoundEventData{
			RoundID:       r.ID,
			Action:        "end",
			Language:      r.Language,
			Category:      r.Category,
			PromptsServed: sum.Served,
			Excellent:     sum.Excellent,
			Close:         sum.Close,
			Retry:         sum.Retry,
			Unscored:      sum.Unscored,
			ScoreGained:   sum.ScoreGained,
			TotalScore:    sum.TotalScore,
			DurationSecs:  int(sum.Duration.Seconds()),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("persist round end: %w", err))
		}
	}
	if s.deps.Snapshots != nil {
		if err := s.saveSnapshot(ctx, sum); err != nil {
			errs = append(errs, err)
		}
	}

	s.deps.Logger.Info("round ended",
		"round", r.ID,
		"served", sum.Served,
		"excellent", sum.Excellent,
		"gained", sum.ScoreGained,
		"total", sum.TotalScore,
	)
	return sum, errors.Join(errs...)
}

func (s *Service) saveSnapshot(ctx context.Context, sum *Summary) error {
	var data store.SnapshotData
	prev, err := s.deps.Snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if prev != nil {
		data = prev.Data
	}
	data.Version = 1
	data.TotalScore = sum.TotalScore
	data.RoundsPlayed++
	data.Attempts += sum.Excellent + sum.Close + sum.Retry
	data.Excellent += sum.Excellent

	if err := s.deps.Snapshots.Save(ctx, &store.Snapshot{Timestamp: s.deps.Now(), Data: data}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := s.deps.Snapshots.Prune(ctx, snapshotsKept); err != nil {
		s.deps.Logger.Warn("prune snapshots", "err", err)
	}
	return nil
}

package practice

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/coach"
	"github.com/abhisek/echoz/internal/mistakes"
	"github.com/abhisek/echoz/internal/recording"
	"github.com/abhisek/echoz/internal/sampler"
	"github.com/abhisek/echoz/internal/similarity"
	"github.com/abhisek/echoz/internal/store"
)

// fakeEvents records appends; query methods panic via the nil embedded
// interface except LatestScore.
type fakeEvents struct {
	store.EventRepo

	mu       sync.Mutex
	attempts []store.AttemptEventData
	rounds   []store.RoundEventData
	latest   int
}

func (f *fakeEvents) AppendAttemptEvent(_ context.Context, d store.AttemptEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, d)
	return nil
}

func (f *fakeEvents) AppendRoundEvent(_ context.Context, d store.RoundEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rounds = append(f.rounds, d)
	return nil
}

func (f *fakeEvents) LatestScore(context.Context) (int, error) {
	return f.latest, nil
}

type fakeSnapshots struct {
	saved  []*store.Snapshot
	pruned int
}

func (f *fakeSnapshots) Save(_ context.Context, s *store.Snapshot) error {
	f.saved = append(f.saved, s)
	return nil
}

func (f *fakeSnapshots) Latest(context.Context) (*store.Snapshot, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshots) Prune(_ context.Context, keep int) error {
	f.pruned = keep
	return nil
}

// failingMistakes rejects every increment.
type failingMistakes struct{ *mistakes.MemStore }

func (failingMistakes) Increment(context.Context, string) error { return errors.New("disk full") }

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testPool() []catalog.Prompt {
	return []catalog.Prompt{
		{ID: "greet-1", Language: "en-US", Category: "greetings", Text: "Good morning, how are you?"},
		{ID: "greet-2", Language: "en-US", Category: "greetings", Text: "Nice to meet you."},
		{ID: "greet-3", Language: "en-US", Category: "greetings", Text: "See you tomorrow."},
		{ID: "food-1", Language: "en-US", Category: "food", Text: "The soup is very hot."},
		{ID: "de-1", Language: "de-DE", Category: "greetings", Text: "Bis morgen."},
	}
}

type harness struct {
	svc   *Service
	mist  *mistakes.MemStore
	evs   *fakeEvents
	snaps *fakeSnapshots
	now   time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		mist:  mistakes.NewMemStore(nil),
		evs:   &fakeEvents{},
		snaps: &fakeSnapshots{},
		now:   t0,
	}
	h.svc = NewService(Deps{
		Mistakes:  h.mist,
		Events:    h.evs,
		Snapshots: h.snaps,
		Coach:     coach.NewService(nil, nil),
		Now:       func() time.Time { return h.now },
	})
	return h
}

func (h *harness) begin(t *testing.T, count int) *Round {
	t.Helper()
	r, err := h.svc.Begin(context.Background(), testPool(), Setup{
		Language:       "en-US",
		Count:          count,
		SamplerOptions: []sampler.Option{sampler.WithRand(rand.New(rand.NewPCG(7, 8)))},
	})
	require.NoError(t, err)
	return r
}

func scored(id string, p catalog.Prompt, heard string) recording.Result {
	return recording.Result{SessionID: id, Prompt: p, State: recording.Scored, Transcript: heard, Listened: 2 * time.Second}
}

func TestBegin_SamplesAndRecordsStart(t *testing.T) {
	h := newHarness(t)
	h.snaps.saved = []*store.Snapshot{{Data: store.SnapshotData{TotalScore: 42}}}

	r := h.begin(t, 3)

	assert.Len(t, r.Prompts, 3)
	for _, p := range r.Prompts {
		assert.Equal(t, "en-US", p.Language)
	}
	assert.Equal(t, 42, r.StartTotal)
	assert.Equal(t, 42, r.Total)
	assert.Equal(t, t0, r.StartTime)
	assert.NotEmpty(t, r.ID)

	require.Len(t, h.evs.rounds, 1)
	start := h.evs.rounds[0]
	assert.Equal(t, "start", start.Action)
	assert.Equal(t, r.ID, start.RoundID)
	assert.Len(t, start.PromptIDs, 3)
}

func TestBegin_TotalFromEventsWithoutSnapshot(t *testing.T) {
	h := newHarness(t)
	h.evs.latest = 17

	r := h.begin(t, 2)
	assert.Equal(t, 17, r.Total)
}

func TestBegin_BoostsPastMistakes(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.mist.Increment(context.Background(), "food-1"))

	r := h.begin(t, 1)
	require.Len(t, r.Prompts, 1)
	assert.Equal(t, "food-1", r.Prompts[0].ID)
}

func TestBegin_NoPrompts(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Begin(context.Background(), testPool(), Setup{Language: "ja-JP", Count: 3})
	assert.ErrorIs(t, err, ErrNoPrompts)

	_, err = h.svc.Begin(context.Background(), testPool(), Setup{Count: 0})
	assert.ErrorIs(t, err, ErrNoPrompts)
}

func TestHandleResult_Excellent(t *testing.T) {
	h := newHarness(t)
	r := h.begin(t, 3)
	p, ok := Current(r)
	require.True(t, ok)

	a, err := h.svc.HandleResult(context.Background(), r, scored("s1", p, p.Text), nil)
	require.NoError(t, err)

	assert.True(t, a.Scored)
	assert.Equal(t, similarity.TierExcellent, a.Outcome.Tier)
	assert.Equal(t, similarity.SuccessDelta, a.ScoreApplied)
	assert.Equal(t, 10, r.Total)
	assert.Nil(t, a.Feedback)

	n, _ := h.mist.Count(context.Background(), p.ID)
	assert.Zero(t, n)

	require.Len(t, h.evs.attempts, 1)
	ev := h.evs.attempts[0]
	assert.Equal(t, store.OutcomeScored, ev.Outcome)
	assert.Equal(t, "excellent", ev.Tier)
	assert.Equal(t, r.ID, ev.RoundID)
	assert.Equal(t, "s1", ev.SessionID)
	assert.Equal(t, int64(2000), ev.ListenedMs)
	assert.InDelta(t, 1.0, ev.Similarity, 1e-9)
}

func TestHandleResult_MissIncrementsOnceAndFloors(t *testing.T) {
	h := newHarness(t)
	r := h.begin(t, 3)
	p, _ := Current(r)

	a, err := h.svc.HandleResult(context.Background(), r, scored("s1", p, "banana"), nil)
	require.NoError(t, err)

	assert.True(t, a.Missed())
	assert.Equal(t, similarity.MissDelta, a.Outcome.ScoreDelta)
	assert.Zero(t, a.ScoreApplied, "total is floored at zero")
	assert.Zero(t, r.Total)
	require.NotNil(t, a.Feedback)
	assert.Equal(t, coach.SourceRules, a.Feedback.Source)

	n, _ := h.mist.Count(context.Background(), p.ID)
	assert.Equal(t, 1, n)

	_, err = h.svc.HandleResult(context.Background(), r, scored("s1", p, "banana"), nil)
	assert.ErrorIs(t, err, ErrAlreadyHandled)
	n, _ = h.mist.Count(context.Background(), p.ID)
	assert.Equal(t, 1, n, "duplicate result must not count twice")
	assert.Len(t, r.Attempts, 1)
}

func TestHandleResult_MissAfterGains(t *testing.T) {
	h := newHarness(t)
	h.evs.latest = 5
	r := h.begin(t, 2)
	p, _ := Current(r)

	a, err := h.svc.HandleResult(context.Background(), r, scored("s1", p, "nothing like it"), nil)
	require.NoError(t, err)
	assert.Equal(t, -2, a.ScoreApplied)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, -2, h.evs.attempts[0].ScoreDelta)
}

func TestHandleResult_UnscoredOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		res         recording.Result
		wantOutcome string
		wantErrMsg  string
	}{
		{
			name:        "empty utterance",
			res:         recording.Result{SessionID: "c1", State: recording.Cancelled, Err: recording.ErrEmptyUtterance},
			wantOutcome: store.OutcomeCancelled,
			wantErrMsg:  recording.ErrEmptyUtterance.Error(),
		},
		{
			name:        "permission denied",
			res:         recording.Result{SessionID: "f1", State: recording.FatalError, Err: recording.ErrPermissionDenied},
			wantOutcome: store.OutcomeFailed,
			wantErrMsg:  recording.ErrPermissionDenied.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.evs.latest = 20
			r := h.begin(t, 2)
			p, _ := Current(r)
			tt.res.Prompt = p

			a, err := h.svc.HandleResult(context.Background(), r, tt.res, nil)
			require.NoError(t, err)

			assert.False(t, a.Scored)
			assert.False(t, a.Missed())
			assert.Equal(t, 20, r.Total)
			n, _ := h.mist.Count(context.Background(), p.ID)
			assert.Zero(t, n)

			require.Len(t, h.evs.attempts, 1)
			assert.Equal(t, tt.wantOutcome, h.evs.attempts[0].Outcome)
			assert.Equal(t, tt.wantErrMsg, h.evs.attempts[0].ErrorMessage)
		})
	}
}

func TestHandleResult_MistakeStoreFailure(t *testing.T) {
	h := newHarness(t)
	h.svc = NewService(Deps{Mistakes: failingMistakes{mistakes.NewMemStore(nil)}, Events: h.evs})
	r, err := h.svc.Begin(context.Background(), testPool(), Setup{Count: 1})
	require.NoError(t, err)
	p, _ := Current(r)

	_, err = h.svc.HandleResult(context.Background(), r, scored("s1", p, "zzz"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, h.evs.attempts, 1, "attempt is still persisted")
}

func TestAdvanceAndCurrent(t *testing.T) {
	r := &Round{Prompts: testPool()[:2]}

	p, ok := Current(r)
	require.True(t, ok)
	assert.Equal(t, "greet-1", p.ID)
	assert.Equal(t, 2, Remaining(r))

	assert.True(t, Advance(r))
	p, _ = Current(r)
	assert.Equal(t, "greet-2", p.ID)

	assert.False(t, Advance(r))
	_, ok = Current(r)
	assert.False(t, ok)
	assert.Zero(t, Remaining(r))

	assert.False(t, Advance(r))
	assert.Equal(t, 2, r.Index)

	_, ok = Current(nil)
	assert.False(t, ok)
}

func TestEnd_PersistsSummaryAndSnapshot(t *testing.T) {
	h := newHarness(t)
	h.snaps.saved = []*store.Snapshot{{Data: store.SnapshotData{Version: 1, TotalScore: 30, RoundsPlayed: 4, Attempts: 12, Excellent: 9}}}
	r := h.begin(t, 3)
	ctx := context.Background()

	p, _ := Current(r)
	_, err := h.svc.HandleResult(ctx, r, scored("a", p, p.Text), nil)
	require.NoError(t, err)
	Advance(r)
	p, _ = Current(r)
	_, err = h.svc.HandleResult(ctx, r, scored("b", p, "xyz"), nil)
	require.NoError(t, err)
	Advance(r)
	p, _ = Current(r)
	_, err = h.svc.HandleResult(ctx, r, recording.Result{SessionID: "c", Prompt: p, State: recording.Cancelled, Err: recording.ErrEmptyUtterance}, nil)
	require.NoError(t, err)

	h.now = t0.Add(95 * time.Second)
	sum, err := h.svc.End(ctx, r)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Served)
	assert.Equal(t, 1, sum.Excellent)
	assert.Equal(t, 1, sum.Unscored)
	assert.Equal(t, 1, sum.Close+sum.Retry)
	assert.Equal(t, 8, sum.ScoreGained)
	assert.Equal(t, 38, sum.TotalScore)
	assert.InDelta(t, 0.5, sum.Accuracy, 1e-9)
	assert.Equal(t, 95*time.Second, sum.Duration)
	assert.Len(t, sum.MissedPromptIDs, 1)

	require.Len(t, h.evs.rounds, 2)
	end := h.evs.rounds[1]
	assert.Equal(t, "end", end.Action)
	assert.Equal(t, 95, end.DurationSecs)
	assert.Equal(t, 38, end.TotalScore)

	require.Len(t, h.snaps.saved, 2)
	snap := h.snaps.saved[1].Data
	assert.Equal(t, 38, snap.TotalScore)
	assert.Equal(t, 5, snap.RoundsPlayed)
	assert.Equal(t, 14, snap.Attempts)
	assert.Equal(t, 10, snap.Excellent)
	assert.Equal(t, snapshotsKept, h.snaps.pruned)

	_, err = h.svc.End(ctx, r)
	assert.ErrorIs(t, err, ErrRoundEnded)
	_, err = h.svc.HandleResult(ctx, r, scored("d", p, p.Text), nil)
	assert.ErrorIs(t, err, ErrRoundEnded)
}

func TestBuildSummary_MissedPromptsDeduplicated(t *testing.T) {
	pool := testPool()
	miss := similarity.Outcome{Similarity: 0.3, Tier: similarity.TierRetry, ScoreDelta: similarity.MissDelta}
	near := similarity.Outcome{Similarity: 0.7, Tier: similarity.TierClose, ScoreDelta: similarity.MissDelta}
	hit := similarity.Outcome{Similarity: 1, Tier: similarity.TierExcellent, ScoreDelta: similarity.SuccessDelta}

	r := &Round{
		StartTotal: 10,
		Total:      14,
		Attempts: []Attempt{
			{Prompt: pool[1], Scored: true, Outcome: miss},
			{Prompt: pool[0], Scored: true, Outcome: near},
			{Prompt: pool[1], Scored: true, Outcome: miss},
			{Prompt: pool[2], Scored: true, Outcome: hit},
		},
	}
	sum := BuildSummary(r)

	assert.Equal(t, []string{"greet-2", "greet-1"}, sum.MissedPromptIDs)
	assert.Equal(t, 2, sum.Retry)
	assert.Equal(t, 1, sum.Close)
	assert.Equal(t, 1, sum.Excellent)
	assert.Equal(t, 4, sum.ScoreGained)
	assert.InDelta(t, 0.25, sum.Accuracy, 1e-9)
}

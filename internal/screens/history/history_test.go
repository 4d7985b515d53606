package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/store"
)

type fakeRepo struct {
	store.EventRepo
	rounds   []store.RoundSummaryRecord
	attempts []store.AttemptRecord
	err      error
}

func (f *fakeRepo) RoundSummaries(context.Context, store.QueryOpts) ([]store.RoundSummaryRecord, error) {
	return f.rounds, f.err
}

func (f *fakeRepo) QueryAttempts(context.Context, store.QueryOpts) ([]store.AttemptRecord, error) {
	return f.attempts, nil
}

func attempt(seq int64, round, text, tier string, sim float64) store.AttemptRecord {
	return store.AttemptRecord{Sequence: seq, AttemptEventData: store.AttemptEventData{
		RoundID: round, ExpectedText: text, Outcome: store.OutcomeScored, Tier: tier, Similarity: sim,
	}}
}

func testRepo() *fakeRepo {
	return &fakeRepo{
		rounds: []store.RoundSummaryRecord{
			{RoundID: "r2", Timestamp: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), Language: "en-US",
				PromptsServed: 2, Excellent: 1, Close: 1, ScoreGained: 8, TotalScore: 18, DurationSecs: 75},
			{RoundID: "r1", Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), Language: "en-US",
				PromptsServed: 1, Excellent: 1, ScoreGained: 10, TotalScore: 10, DurationSecs: 30},
		},
		// Newest first, as the repo returns them.
		attempts: []store.AttemptRecord{
			attempt(3, "r2", "See you soon", "close", 0.7),
			attempt(2, "r2", "Good morning", "excellent", 0.95),
			attempt(1, "r1", "Hello", "excellent", 1),
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
	if !s.loaded {
		t.Fatal("expected history to be loaded")
	}
}

func TestHistory_GroupsAttemptsOldestFirst(t *testing.T) {
	s := New(testRepo())
	load(t, s)

	got := s.attempts["r2"]
	if len(got) != 2 {
		t.Fatalf("r2 attempts = %d, want 2", len(got))
	}
	if got[0].ExpectedText != "Good morning" {
		t.Errorf("first r2 attempt = %q, want Good morning", got[0].ExpectedText)
	}
}

func TestHistory_ViewAndExpand(t *testing.T) {
	s := New(testRepo())
	load(t, s)

	view := s.View(100, 30)
	if !strings.Contains(view, "Mar 02, 2026") || !strings.Contains(view, "1:15") {
		t.Errorf("view missing round line:\n%s", view)
	}
	if strings.Contains(view, "See you soon") {
		t.Error("details shown before expanding")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "See you soon") {
		t.Error("expected attempt details after Enter")
	}
}

func TestHistory_Navigation(t *testing.T) {
	s := New(testRepo())
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}

func TestHistory_Empty(t *testing.T) {
	s := New(&fakeRepo{})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "No rounds yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistory_Error(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("db locked")})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "db locked") {
		t.Error("expected error message")
	}
}

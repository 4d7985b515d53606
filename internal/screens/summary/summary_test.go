package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/practice"
	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/similarity"
)

func testSummary() *practice.Summary {
	return &practice.Summary{
		RoundID:     "round-1",
		Language:    "en-US",
		Category:    "greetings",
		Duration:    3*time.Minute + 5*time.Second,
		Served:      3,
		Excellent:   1,
		Close:       1,
		Unscored:    1,
		ScoreGained: 8,
		TotalScore:  42,
		Accuracy:    0.5,
		Attempts: []practice.Attempt{
			{
				Prompt:  catalog.Prompt{ID: "greet-1", Text: "Good morning, how are you?"},
				Scored:  true,
				Outcome: similarity.Outcome{Similarity: 0.93, Tier: similarity.TierExcellent, ScoreDelta: 10},
			},
			{
				Prompt:  catalog.Prompt{ID: "greet-2", Text: "Nice to meet you."},
				Scored:  true,
				Outcome: similarity.Outcome{Similarity: 0.7, Tier: similarity.TierClose, ScoreDelta: -2},
			},
			{Prompt: catalog.Prompt{ID: "greet-3", Text: "See you tomorrow."}},
		},
		MissedPromptIDs: []string{"greet-2"},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Round Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Round Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"Round complete!", "3:05", "Accuracy: 50%", "Nice to meet you.", "93%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_EmptyRound(t *testing.T) {
	s := New(&practice.Summary{Language: "en-US"})
	if !strings.Contains(s.View(80, 24), "No attempts") {
		t.Error("expected empty-round message")
	}
}

func TestSummaryScreen_InitReportsScore(t *testing.T) {
	s := New(testSummary())
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a score command")
	}
	if msg, ok := cmd().(screen.ScoreMsg); !ok || msg.Total != 42 {
		t.Errorf("Init msg = %#v, want ScoreMsg{42}", cmd())
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg on Enter")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 6); got != "hello…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("hi", 6); got != "hi" {
		t.Errorf("truncate = %q", got)
	}
}

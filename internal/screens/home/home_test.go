package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/store"
)

type fakeSnapshots struct {
	store.SnapshotRepo
	snap *store.Snapshot
}

func (f *fakeSnapshots) Latest(context.Context) (*store.Snapshot, error) {
	return f.snap, nil
}

type stubScreen struct{ screen.Screen }

func TestHome_InitLoadsStats(t *testing.T) {
	h := New(Deps{Snapshots: &fakeSnapshots{snap: &store.Snapshot{Data: store.SnapshotData{
		TotalScore: 120, RoundsPlayed: 4, Attempts: 20, Excellent: 15,
	}}}})

	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	_, scoreCmd := h.Update(cmd())
	if scoreCmd == nil {
		t.Fatal("expected a score command")
	}
	if msg, ok := scoreCmd().(screen.ScoreMsg); !ok || msg.Total != 120 {
		t.Errorf("score msg = %#v, want ScoreMsg{120}", scoreCmd())
	}

	view := h.View(100, 30)
	for _, want := range []string{"★ 120", "75%", "START ROUND"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHome_NoSnapshot(t *testing.T) {
	h := New(Deps{Snapshots: &fakeSnapshots{}})
	h.Update(h.Init()())
	if h.stats.TotalScore != 0 {
		t.Errorf("TotalScore = %d, want 0", h.stats.TotalScore)
	}
	if h := New(Deps{}); h.Init() != nil {
		t.Error("expected no load command without a snapshot repo")
	}
}

func TestHome_StartPushesRound(t *testing.T) {
	round := &stubScreen{}
	h := New(Deps{NewRound: func() screen.Screen { return round }})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen != round {
		t.Errorf("expected PushScreenMsg with the round screen, got %#v", cmd())
	}
}

func TestHome_DisabledEntriesSkipped(t *testing.T) {
	h := New(Deps{})
	if h.menu.Selected != 2 {
		t.Errorf("Selected = %d, want QUIT (2) when nothing else is wired", h.menu.Selected)
	}
}

package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/screens/home"
)

func TestAppModel_ScoreMsgUpdatesHeader(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	updated, _ := m.Update(screen.ScoreMsg{Total: 37})
	if got := updated.(AppModel).score; got != 37 {
		t.Errorf("score = %d, want 37", got)
	}
}

func TestAppModel_StartsOnWelcome(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*home.HomeScreen); ok {
		t.Error("expected the welcome screen first")
	}
	m = newAppModel(Options{SkipWelcome: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Error("expected the home screen with SkipWelcome")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestAppModel_ViewTooSmall(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	v := updated.(AppModel).View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}

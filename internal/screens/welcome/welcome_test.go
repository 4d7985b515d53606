package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) {
	for range n {
		w.Update(tickMsg(time.Now()))
	}
}

func TestBannerAppearsAfterDelay(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(80, 24), "Nail it") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 8)
	if w.elapsed != bannerAt {
		t.Errorf("elapsed = %v, want %v", w.elapsed, bannerAt)
	}
	if !strings.Contains(w.View(80, 24), "Nail it") {
		t.Error("tagline should be visible once the banner phase starts")
	}
}

func TestElapsedIsCapped(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 50)
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want %v", w.elapsed, totalDur)
	}
	if *calls != 0 {
		t.Errorf("home built without a keypress")
	}
}

func TestKeypressReplacesWithHome(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger the transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replacement screen is nil")
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'x'})
	if cmd != nil {
		t.Error("second keypress should not transition again")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestWaveAnimates(t *testing.T) {
	if renderWave(0) == renderWave(1) {
		t.Error("consecutive frames should differ")
	}
	if got := len(strings.Split(renderWave(0), "\n")); got != waveHeight {
		t.Errorf("wave has %d rows, want %d", got, waveHeight)
	}
}

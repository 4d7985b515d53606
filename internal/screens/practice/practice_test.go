package practice

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/echoz/internal/asr/scripted"
	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/coach"
	prac "github.com/abhisek/echoz/internal/practice"
	"github.com/abhisek/echoz/internal/recording"
	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/similarity"
)

func testPool() []catalog.Prompt {
	return []catalog.Prompt{
		{ID: "greet-1", Language: "en-US", Category: "greetings", Text: "Good morning"},
		{ID: "greet-2", Language: "en-US", Category: "greetings", Text: "See you soon"},
	}
}

func newTestScreen(t *testing.T) (*PracticeScreen, *scripted.Recognizer) {
	t.Helper()
	rec := scripted.New(0)
	mgr := recording.NewManager(scripted.Microphone{SampleRate: 16000}, rec)
	s := New(Deps{
		Practice:    prac.NewService(prac.Deps{Coach: coach.NewService(nil, nil)}),
		Recorder:    mgr,
		Pool:        testPool(),
		Setup:       prac.Setup{Language: "en-US", Count: 2},
		MaxDuration: 30 * time.Second,
		Typist:      rec,
	})
	return s, rec
}

// ready runs the round setup command and applies its result.
func ready(t *testing.T, s *PracticeScreen) tea.Cmd {
	t.Helper()
	msg := s.beginRound()()
	_, cmd := s.Update(msg)
	require.Equal(t, phaseReady, s.phase)
	return cmd
}

// await reads posted messages until one satisfies match.
func await(t *testing.T, s *PracticeScreen, match func(any) bool) any {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case msg := <-s.inbox:
			if match(msg) {
				return msg
			}
			s.Update(msg)
		case <-deadline:
			t.Fatal("timed out waiting for message")
			return nil
		}
	}
}

func press(s *PracticeScreen, key string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		msg = tea.KeyPressMsg{Code: ' ', Text: " "}
	default:
		msg = tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
	_, cmd := s.Update(msg)
	return cmd
}

func TestRoundReady_ReportsScore(t *testing.T) {
	s, _ := newTestScreen(t)
	cmd := ready(t, s)
	require.NotNil(t, cmd)
	assert.Equal(t, screen.ScoreMsg{Total: 0}, cmd())
	assert.Len(t, s.round.Prompts, 2)
}

func TestRoundReady_ErrorShown(t *testing.T) {
	s, _ := newTestScreen(t)
	s.Update(roundReadyMsg{Err: prac.ErrNoPrompts})
	assert.Contains(t, s.View(80, 24), "no prompts match")

	cmd := press(s, "enter")
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestFullAttempt_TypistMode(t *testing.T) {
	s, rec := newTestScreen(t)
	ready(t, s)

	target, ok := prac.Current(s.round)
	require.True(t, ok)
	rec.Say(target.Text)

	press(s, "enter")
	require.Equal(t, phaseListening, s.phase)
	require.NotNil(t, s.session)

	await(t, s, func(m any) bool {
		tm, ok := m.(transcriptMsg)
		if ok {
			s.Update(tm)
		}
		return ok && tm.Update.Kind == recording.EventFinal
	})
	assert.Equal(t, target.Text, s.live)

	// An empty line finishes the attempt.
	press(s, "enter")

	ended := await(t, s, func(m any) bool {
		_, ok := m.(sessionEndedMsg)
		return ok
	})
	_, cmd := s.Update(ended)
	require.Equal(t, phaseScoring, s.phase)
	require.NotNil(t, cmd)

	_, cmd = s.Update(cmd())
	require.Equal(t, phaseFeedback, s.phase)
	require.NotNil(t, s.attempt)
	assert.True(t, s.attempt.Scored)
	assert.Equal(t, similarity.TierExcellent, s.attempt.Outcome.Tier)
	assert.Equal(t, screen.ScoreMsg{Total: similarity.SuccessDelta}, cmd())
	assert.Contains(t, s.View(80, 30), "EXCELLENT")

	press(s, "enter")
	assert.Equal(t, phaseReady, s.phase)
	assert.Equal(t, 1, s.round.Index)
}

func TestStaleMessagesIgnored(t *testing.T) {
	s, _ := newTestScreen(t)
	ready(t, s)

	s.Update(transcriptMsg{SessionID: "other", Update: recording.Update{Interim: "hello"}})
	assert.Empty(t, s.live)

	_, cmd := s.Update(sessionEndedMsg{Result: recording.Result{SessionID: "other"}})
	assert.Nil(t, cmd)
	assert.Equal(t, phaseReady, s.phase)
}

func TestAlreadyHandledAttemptIgnored(t *testing.T) {
	s, _ := newTestScreen(t)
	ready(t, s)
	s.phase = phaseScoring

	_, cmd := s.Update(attemptMsg{Err: prac.ErrAlreadyHandled})
	assert.Nil(t, cmd)
	assert.Equal(t, phaseScoring, s.phase)
}

func TestUnscoredAttemptShowsReason(t *testing.T) {
	s, _ := newTestScreen(t)
	ready(t, s)

	s.Update(attemptMsg{Attempt: prac.Attempt{
		Result: recording.Result{SessionID: "x", State: recording.Cancelled, Err: recording.ErrEmptyUtterance},
	}})
	assert.Equal(t, phaseFeedback, s.phase)
	assert.Contains(t, s.View(80, 30), "Nothing was heard")
}

func TestLateTipShown(t *testing.T) {
	s, _ := newTestScreen(t)
	ready(t, s)
	s.Update(attemptMsg{Attempt: prac.Attempt{
		Scored:  true,
		Outcome: similarity.Outcome{Similarity: 0.7, Tier: similarity.TierClose},
		Result:  recording.Result{SessionID: "sess-1", State: recording.Scored, Transcript: "good"},
	}})

	s.Update(tipMsg{SessionID: "sess-2", Feedback: &coach.Feedback{Tip: "wrong attempt"}})
	assert.Nil(t, s.tip)

	s.Update(tipMsg{SessionID: "sess-1", Feedback: &coach.Feedback{Tip: "Stretch the vowel", Source: coach.SourceLLM}})
	require.NotNil(t, s.tip)
	assert.Contains(t, s.View(80, 30), "Stretch the vowel")
}

func TestQuitConfirm(t *testing.T) {
	s, _ := newTestScreen(t)
	ready(t, s)

	press(s, "esc")
	assert.True(t, s.quitConfirm)
	press(s, "n")
	assert.False(t, s.quitConfirm)
	assert.Equal(t, phaseReady, s.phase)

	press(s, "esc")
	cmd := press(s, "y")
	require.NotNil(t, cmd)
	assert.Equal(t, phaseEnding, s.phase)

	msg := cmd()
	ended, ok := msg.(roundEndedMsg)
	require.True(t, ok)
	require.NoError(t, ended.Err)
	assert.Equal(t, 0, ended.Summary.Served)

	_, cmd = s.Update(ended)
	require.NotNil(t, cmd)
	assert.IsType(t, router.ReplaceScreenMsg{}, cmd())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", formatClock(0))
	assert.Equal(t, "0:09", formatClock(9*time.Second))
	assert.Equal(t, "1:05", formatClock(65*time.Second))
}

func TestQuitWhileListening_EndsAfterAttempt(t *testing.T) {
	s, _ := newTestScreen(t)
	ready(t, s)

	press(s, "enter")
	require.Equal(t, phaseListening, s.phase)

	press(s, "esc")
	require.True(t, s.quitConfirm)
	cmd := press(s, "y")
	assert.Nil(t, cmd)
	assert.True(t, s.endPending)
	assert.Equal(t, phaseEnding, s.phase)

	ended := await(t, s, func(m any) bool {
		_, ok := m.(sessionEndedMsg)
		return ok
	})
	_, cmd = s.Update(ended)
	require.NotNil(t, cmd)
	assert.Equal(t, phaseEnding, s.phase)

	_, cmd = s.Update(cmd())
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	var summary *prac.Summary
	for _, c := range batch {
		if m, ok := c().(roundEndedMsg); ok {
			summary = m.Summary
		}
	}
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Served)
	assert.Equal(t, 1, summary.Unscored)
}

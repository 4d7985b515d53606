package practice

import (
	"context"
	"errors"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/coach"
	prac "github.com/abhisek/echoz/internal/practice"
	"github.com/abhisek/echoz/internal/recording"
	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/screens/summary"
	"github.com/abhisek/echoz/internal/ui/components"
	"github.com/abhisek/echoz/internal/ui/layout"
)

const tickInterval = 200 * time.Millisecond

// Typist stands in for the microphone: what the learner types is what the
// recognizer hears.
type Typist interface {
	Say(text string)
}

// Deps wires the practice screen.
type Deps struct {
	Practice    *prac.Service
	Recorder    *recording.Manager
	Pool        []catalog.Prompt
	Setup       prac.Setup
	MaxDuration time.Duration

	// Typist, when set, puts the screen in simulate mode.
	Typist Typist
}

type phase int

const (
	phaseLoading phase = iota
	phaseReady
	phaseListening
	phaseScoring
	phaseFeedback
	phaseEnding
)

// PracticeScreen runs one round: for each prompt the learner records an
// attempt and sees how close it was.
type PracticeScreen struct {
	deps  Deps
	inbox chan any

	round   *prac.Round
	total   int
	phase   phase
	session *recording.Session
	state   recording.State
	started time.Time
	now     time.Time
	live    string
	attempt *prac.Attempt
	tip     *coach.Feedback

	spinner     spinner.Model
	input       components.TextInput
	quitConfirm bool
	// endPending ends the round once the in-flight attempt is recorded.
	endPending bool
	notice      string
	errMsg      string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen.
func New(deps Deps) *PracticeScreen {
	return &PracticeScreen{
		deps:    deps,
		inbox:   make(chan any, 64),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		input:   components.NewTextInput("Type what you say, Enter to send", 200),
	}
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(s.beginRound(), s.waitInbox(), s.spinner.Tick)
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{{Key: "Y", Description: "End round"}, {Key: "N", Description: "Keep going"}}
	}
	switch s.phase {
	case phaseReady:
		if s.deps.Typist != nil {
			return []layout.KeyHint{{Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Quit"}}
		}
		return []layout.KeyHint{{Key: "Space", Description: "Speak"}, {Key: "Esc", Description: "Quit"}}
	case phaseListening:
		if s.deps.Typist != nil {
			return []layout.KeyHint{{Key: "Enter", Description: "Send / finish"}, {Key: "Esc", Description: "Quit"}}
		}
		return []layout.KeyHint{{Key: "Space", Description: "Done"}, {Key: "Esc", Description: "Quit"}}
	case phaseFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Quit"}}
	}
	return nil
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case inboxMsg:
		next, cmd := s.Update(msg.inner)
		return next, tea.Batch(cmd, s.waitInbox())

	case roundReadyMsg:
		return s.handleRoundReady(msg)

	case transcriptMsg:
		if s.session != nil && msg.SessionID == s.session.ID() {
			s.live = msg.Update.Text()
			s.state = recording.Listening
		}
		return s, nil

	case sessionEndedMsg:
		return s.handleSessionEnded(msg)

	case attemptMsg:
		return s.handleAttempt(msg)

	case tipMsg:
		if s.attempt != nil && s.attempt.Result.SessionID == msg.SessionID {
			s.tip = msg.Feedback
		}
		return s, nil

	case roundEndedMsg:
		return s.handleRoundEnded(msg)

	case tickMsg:
		if s.phase != phaseListening {
			return s, nil
		}
		s.now = msg.At
		if !msg.State.Terminal() {
			s.state = msg.State
		}
		if s.state == recording.Listening && s.started.IsZero() {
			s.started = msg.At
		}
		return s, s.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseListening && s.deps.Typist != nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// post delivers msg to the UI from another goroutine. Transcript fragments
// are dropped when the UI falls behind; everything else is queued.
func (s *PracticeScreen) post(msg any) {
	if _, ok := msg.(transcriptMsg); ok {
		select {
		case s.inbox <- msg:
		default:
		}
		return
	}
	go func() { s.inbox <- msg }()
}

func (s *PracticeScreen) waitInbox() tea.Cmd {
	inbox := s.inbox
	return func() tea.Msg {
		return inboxMsg{inner: <-inbox}
	}
}

func (s *PracticeScreen) tick() tea.Cmd {
	sess := s.session
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		st := recording.Idle
		if sess != nil {
			st = sess.State()
		}
		return tickMsg{At: t, State: st}
	})
}

func (s *PracticeScreen) beginRound() tea.Cmd {
	svc, pool, setup := s.deps.Practice, s.deps.Pool, s.deps.Setup
	return func() tea.Msg {
		r, err := svc.Begin(context.Background(), pool, setup)
		return roundReadyMsg{Round: r, Err: err}
	}
}

func (s *PracticeScreen) handleRoundReady(msg roundReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.round = msg.Round
	s.total = msg.Round.Total
	s.phase = phaseReady
	total := s.total
	return s, func() tea.Msg { return screen.ScoreMsg{Total: total} }
}

// startSession opens a recording for the current prompt.
func (s *PracticeScreen) startSession() (screen.Screen, tea.Cmd) {
	prompt, ok := prac.Current(s.round)
	if !ok {
		return s, nil
	}
	sess, err := s.deps.Recorder.StartSession(context.Background(), prompt)
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}

	id := sess.ID()
	sess.OnTranscript(func(u recording.Update) {
		s.post(transcriptMsg{SessionID: id, Update: u})
	})
	sess.OnEnded(func(res recording.Result) {
		s.post(sessionEndedMsg{Result: res})
	})

	s.session = sess
	s.state = recording.AwaitingPermission
	s.phase = phaseListening
	s.started, s.now = time.Time{}, time.Time{}
	s.live, s.notice = "", ""
	s.attempt, s.tip = nil, nil

	cmds := []tea.Cmd{s.tick()}
	if s.deps.Typist != nil {
		s.input.Reset()
		cmds = append(cmds, s.input.Init())
	}
	return s, tea.Batch(cmds...)
}

func (s *PracticeScreen) stopSession() {
	if s.session != nil {
		s.deps.Recorder.CancelSession(s.session)
	}
}

func (s *PracticeScreen) handleSessionEnded(msg sessionEndedMsg) (screen.Screen, tea.Cmd) {
	if s.session == nil || msg.Result.SessionID != s.session.ID() {
		return s, nil
	}
	if !s.endPending {
		s.phase = phaseScoring
	}

	svc, round, res := s.deps.Practice, s.round, msg.Result
	onTip := func(f *coach.Feedback) {
		s.post(tipMsg{SessionID: res.SessionID, Feedback: f})
	}
	return s, func() tea.Msg {
		a, err := svc.HandleResult(context.Background(), round, res, onTip)
		return attemptMsg{Attempt: a, Total: round.Total, Err: err}
	}
}

func (s *PracticeScreen) handleAttempt(msg attemptMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil && errors.Is(msg.Err, prac.ErrAlreadyHandled) {
		return s, nil
	}
	if msg.Err != nil {
		s.notice = "Not saved: " + msg.Err.Error()
	}
	s.attempt = &msg.Attempt
	s.total = msg.Total
	s.session = nil
	total := s.total
	score := func() tea.Msg { return screen.ScoreMsg{Total: total} }
	if s.endPending {
		s.endPending = false
		_, end := s.endRound()
		return s, tea.Batch(score, end)
	}
	s.phase = phaseFeedback
	return s, score
}

func (s *PracticeScreen) next() (screen.Screen, tea.Cmd) {
	if prac.Advance(s.round) {
		s.phase = phaseReady
		s.attempt, s.tip, s.live = nil, nil, ""
		return s, nil
	}
	return s.endRound()
}

func (s *PracticeScreen) endRound() (screen.Screen, tea.Cmd) {
	if s.round == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.phase = phaseEnding
	if s.session != nil {
		// HandleResult and End must not touch the round concurrently.
		s.endPending = true
		s.stopSession()
		return s, nil
	}
	svc, round := s.deps.Practice, s.round
	return s, func() tea.Msg {
		sum, err := svc.End(context.Background(), round)
		return roundEndedMsg{Summary: sum, Err: err}
	}
}

func (s *PracticeScreen) handleRoundEnded(msg roundEndedMsg) (screen.Screen, tea.Cmd) {
	if msg.Summary == nil {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}
	sum := msg.Summary
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s.endRound()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "ctrl+c" {
		return s, nil
	}

	switch s.phase {
	case phaseLoading, phaseEnding:
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case phaseReady:
		switch key {
		case "space", "enter":
			return s.startSession()
		case "esc":
			s.quitConfirm = true
		}

	case phaseListening:
		if key == "esc" {
			s.quitConfirm = true
			return s, nil
		}
		if s.deps.Typist != nil {
			if key == "enter" {
				text := strings.TrimSpace(s.input.Value())
				if text == "" {
					s.stopSession()
					return s, nil
				}
				s.deps.Typist.Say(text)
				s.input.Reset()
				return s, nil
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		if key == "space" || key == "enter" {
			s.stopSession()
		}

	case phaseFeedback:
		switch key {
		case "enter", "space":
			return s.next()
		case "esc":
			s.quitConfirm = true
		}
	}
	return s, nil
}

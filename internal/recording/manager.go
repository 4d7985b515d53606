package recording

import (
	"context"
	"sync"

	"github.com/abhisek/echoz/internal/catalog"
)

// Manager hands out recording sessions to a single caller, such as a game
// screen, and enforces that at most one of them is active at a time.
type Manager struct {
	mic  Microphone
	rec  Recognizer
	opts []Option

	mu     sync.Mutex
	active *Session
}

// NewManager returns a Manager whose sessions use mic and rec. opts apply
// to every session it starts.
func NewManager(mic Microphone, rec Recognizer, opts ...Option) *Manager {
	return &Manager{mic: mic, rec: rec, opts: opts}
}

// StartSession starts a session for prompt. It fails fast with
// ErrSessionActive while the previous session has not ended.
func (m *Manager) StartSession(ctx context.Context, prompt catalog.Prompt) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil && !m.active.Ended() {
		return nil, ErrSessionActive
	}
	s := NewSession(prompt, m.mic, m.rec, m.opts...)
	if err := s.Start(ctx); err != nil {
		return nil, err
	}
	m.active = s
	return s, nil
}

// CancelSession stops s. A nil or already-ended session is ignored.
func (m *Manager) CancelSession(s *Session) {
	if s == nil {
		return
	}
	s.Stop()
}

// OnTranscriptUpdate registers cb for live transcript fragments of s.
func (m *Manager) OnTranscriptUpdate(s *Session, cb func(Update)) {
	s.OnTranscript(cb)
}

// OnSessionEnded registers cb for the result of s. It fires exactly once.
func (m *Manager) OnSessionEnded(s *Session, cb func(Result)) {
	s.OnEnded(cb)
}

// Active returns the session that has not ended yet, or nil.
func (m *Manager) Active() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil || m.active.Ended() {
		return nil
	}
	return m.active
}

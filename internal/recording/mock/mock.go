// Package mock provides test doubles for the recording capabilities.
//
// Stream channels are unbuffered, so Send returns only once the session
// has taken the event. Clock fires timers synchronously from Advance.
//
// Example:
//
//	stream := mock.NewStream()
//	rec := &mock.Recognizer{Streams: []*mock.Stream{stream}}
//	mic := &mock.Microphone{Handle: &mock.CaptureHandle{}}
//	s := recording.NewSession(prompt, mic, rec, recording.WithClock(mock.NewClock(time.Time{})))
package mock

import (
	"context"
	"sync"

	"github.com/abhisek/echoz/internal/recording"
)

// Microphone is a mock recording.Microphone.
type Microphone struct {
	mu sync.Mutex

	// Handle is returned by RequestCapture. When nil a fresh CaptureHandle is
	// created per call.
	Handle *CaptureHandle

	// Err, if non-nil, is returned instead of a handle.
	Err error

	// Gate, if non-nil, blocks RequestCapture until it is closed. The
	// context is deliberately ignored while waiting.
	Gate <-chan struct{}

	// Calls records the context of every RequestCapture call.
	Calls []context.Context
}

// RequestCapture records the call and returns Handle or Err.
func (m *Microphone) RequestCapture(ctx context.Context) (recording.CaptureHandle, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, ctx)
	gate := m.Gate
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Handle == nil {
		m.Handle = &CaptureHandle{}
	}
	return m.Handle, nil
}

// CallCount returns the number of RequestCapture calls.
func (m *Microphone) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastContext returns the context of the latest call, or nil.
func (m *Microphone) LastContext() context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return nil
	}
	return m.Calls[len(m.Calls)-1]
}

var _ recording.Microphone = (*Microphone)(nil)

// CaptureHandle is a mock recording.CaptureHandle.
type CaptureHandle struct {
	mu sync.Mutex

	// Artifact is returned by Stop.
	Artifact recording.AudioArtifact

	// StopErr, if non-nil, is returned by Stop.
	StopErr error

	stopCalls int
}

// Stop records the call and returns Artifact, StopErr.
func (h *CaptureHandle) Stop() (recording.AudioArtifact, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopCalls++
	if h.StopErr != nil {
		return recording.AudioArtifact{}, h.StopErr
	}
	return h.Artifact, nil
}

// StopCalls returns how many times Stop was called.
func (h *CaptureHandle) StopCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopCalls
}

var _ recording.CaptureHandle = (*CaptureHandle)(nil)

// Recognizer is a mock recording.Recognizer. Open hands out Streams in
// order and creates fresh streams once they run out.
type Recognizer struct {
	mu sync.Mutex

	// Streams are returned by successive Open calls.
	Streams []*Stream

	// OpenErr, if non-nil, is returned by Open.
	OpenErr error

	// OpenErrAfter makes Open fail with OpenErr only after this many
	// successful opens. Zero means OpenErr applies from the first call.
	OpenErrAfter int

	opened    []*Stream
	languages []string
}

// Open records the language tag and returns the next stream.
func (r *Recognizer) Open(_ context.Context, languageTag string) (recording.RecognizerStream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.languages = append(r.languages, languageTag)
	if r.OpenErr != nil && len(r.opened) >= r.OpenErrAfter {
		return nil, r.OpenErr
	}
	var s *Stream
	if len(r.Streams) > 0 {
		s, r.Streams = r.Streams[0], r.Streams[1:]
	} else {
		s = NewStream()
	}
	r.opened = append(r.opened, s)
	return s, nil
}

// Languages returns the language tag of every Open call.
func (r *Recognizer) Languages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.languages...)
}

// Opened returns the streams handed out so far.
func (r *Recognizer) Opened() []*Stream {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Stream(nil), r.opened...)
}

// Last returns the most recently opened stream, or nil.
func (r *Recognizer) Last() *Stream {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.opened) == 0 {
		return nil
	}
	return r.opened[len(r.opened)-1]
}

var _ recording.Recognizer = (*Recognizer)(nil)

// Stream is a mock recording.RecognizerStream backed by an unbuffered
// channel.
type Stream struct {
	// FlushOnStop events are delivered by Stop before the channel closes,
	// like a recognizer emitting its last buffered result.
	FlushOnStop []recording.RecognizerEvent

	// StopErr, if non-nil, is returned by Stop.
	StopErr error

	ch      chan recording.RecognizerEvent
	ended   chan struct{}
	endOnce sync.Once
	sendMu  sync.RWMutex

	mu        sync.Mutex
	stopCalls int
}

// NewStream returns an open stream.
func NewStream() *Stream {
	return &Stream{
		ch:    make(chan recording.RecognizerEvent),
		ended: make(chan struct{}),
	}
}

// Events returns the event channel.
func (s *Stream) Events() <-chan recording.RecognizerEvent { return s.ch }

// Send blocks until the consumer receives ev. It returns false if the
// stream ended first.
func (s *Stream) Send(ev recording.RecognizerEvent) bool {
	s.sendMu.RLock()
	defer s.sendMu.RUnlock()
	select {
	case <-s.ended:
		return false
	default:
	}
	select {
	case s.ch <- ev:
		return true
	case <-s.ended:
		return false
	}
}

// End closes the stream as if the recognizer stopped on its own.
func (s *Stream) End() {
	s.endOnce.Do(func() {
		close(s.ended)
		s.sendMu.Lock()
		close(s.ch)
		s.sendMu.Unlock()
	})
}

// Stop flushes FlushOnStop, closes the stream and returns StopErr.
func (s *Stream) Stop() error {
	s.mu.Lock()
	s.stopCalls++
	flush := s.FlushOnStop
	s.FlushOnStop = nil
	s.mu.Unlock()

	for _, ev := range flush {
		s.Send(ev)
	}
	s.End()
	return s.StopErr
}

// StopCalls returns how many times Stop was called.
func (s *Stream) StopCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopCalls
}

// IsEnded reports whether the stream has been closed.
func (s *Stream) IsEnded() bool {
	select {
	case <-s.ended:
		return true
	default:
		return false
	}
}

var _ recording.RecognizerStream = (*Stream)(nil)

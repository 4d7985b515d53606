// Package scripted provides a recognizer that hears typed text. It backs
// --simulate mode and machines without a speech model: each line passed to
// Say is replayed word by word as interim fragments, then as one final
// fragment.
package scripted

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/echoz/internal/audio"
	"github.com/abhisek/echoz/internal/recording"
)

// Recognizer is a recording.Recognizer fed by Say.
type Recognizer struct {
	// WordDelay paces interim fragments.
	WordDelay time.Duration

	mu      sync.Mutex
	active  *stream
	pending []string
	langs   []string
}

// New returns a recognizer that paces words by delay.
func New(delay time.Duration) *Recognizer {
	return &Recognizer{WordDelay: delay}
}

// Say speaks text into the open stream, or into the next one opened.
// Empty text is heard as silence and reported as no-speech.
func (r *Recognizer) Say(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil && r.active.offer(text) {
		return
	}
	r.pending = append(r.pending, text)
}

// Open starts a stream and replays any pending lines into it.
func (r *Recognizer) Open(ctx context.Context, languageTag string) (recording.RecognizerStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := &stream{
		delay:  r.WordDelay,
		lines:  make(chan string, 8),
		events: make(chan recording.RecognizerEvent),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	r.mu.Lock()
	r.langs = append(r.langs, languageTag)
	for len(r.pending) > 0 && len(s.lines) < cap(s.lines) {
		s.lines <- r.pending[0]
		r.pending = r.pending[1:]
	}
	r.active = s
	r.mu.Unlock()

	go func() {
		s.run()
		r.mu.Lock()
		if r.active == s {
			r.active = nil
		}
		r.mu.Unlock()
	}()
	return s, nil
}

// Languages lists the language tags passed to Open.
func (r *Recognizer) Languages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.langs...)
}

type stream struct {
	delay  time.Duration
	lines  chan string
	events chan recording.RecognizerEvent
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

func (s *stream) Events() <-chan recording.RecognizerEvent { return s.events }

func (s *stream) Stop() error {
	s.once.Do(func() { close(s.stop) })
	<-s.done
	return nil
}

// offer queues a line unless the stream is stopping or full.
func (s *stream) offer(text string) bool {
	select {
	case <-s.stop:
		return false
	default:
	}
	select {
	case s.lines <- text:
		return true
	default:
		return false
	}
}

func (s *stream) run() {
	defer close(s.done)
	defer close(s.events)
	for {
		select {
		case line := <-s.lines:
			if !s.speak(line) {
				s.drain()
				return
			}
		case <-s.stop:
			s.drain()
			return
		}
	}
}

// drain delivers lines still queued at stop as finals.
func (s *stream) drain() {
	for {
		select {
		case line := <-s.lines:
			if words := strings.Fields(line); len(words) > 0 {
				s.events <- recording.FinalEvent(strings.Join(words, " "))
			}
		default:
			return
		}
	}
}

// speak replays one line. A stop mid-line still delivers the whole line
// as final. It returns false once the stream is stopping.
func (s *stream) speak(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return s.send(recording.ErrorEvent(recording.CodeNoSpeech))
	}
	for i := 1; i < len(words); i++ {
		if !s.pause() || !s.send(recording.InterimEvent(strings.Join(words[:i], " "))) {
			s.events <- recording.FinalEvent(strings.Join(words, " "))
			return false
		}
	}
	if !s.pause() {
		s.events <- recording.FinalEvent(strings.Join(words, " "))
		return false
	}
	return s.send(recording.FinalEvent(strings.Join(words, " ")))
}

func (s *stream) send(ev recording.RecognizerEvent) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.stop:
		if ev.Kind == recording.EventFinal {
			s.events <- ev
		}
		return false
	}
}

func (s *stream) pause() bool {
	if s.delay <= 0 {
		return true
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.stop:
		return false
	}
}

var _ recording.Recognizer = (*Recognizer)(nil)

// Microphone is a recording.Microphone that records silence.
type Microphone struct {
	SampleRate int
}

// RequestCapture always succeeds.
func (m Microphone) RequestCapture(ctx context.Context) (recording.CaptureHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &silence{rate: m.SampleRate, start: time.Now()}, nil
}

type silence struct {
	rate  int
	start time.Time
}

// Stop returns a WAV of silence as long as the capture ran.
func (h *silence) Stop() (recording.AudioArtifact, error) {
	d := time.Since(h.start)
	n := int(d.Seconds()*float64(h.rate)) * audio.Channels * 2
	return recording.AudioArtifact{
		Format:     "wav",
		SampleRate: h.rate,
		Data:       audio.EncodeWAV(make([]byte, n), h.rate, audio.Channels),
		Duration:   audio.PCMDuration(n, h.rate, audio.Channels),
	}, nil
}

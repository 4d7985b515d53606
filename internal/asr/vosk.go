// Package asr provides offline speech recognition with Vosk. A Vosk
// recognizer reads PCM frames from an audio tap and turns Vosk's partial
// and endpoint results into recording events.
package asr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	vosk "github.com/alphacep/vosk-api/go"

	"github.com/abhisek/echoz/internal/audio"
	"github.com/abhisek/echoz/internal/recording"
)

// tapBuffer holds about two seconds of 10ms periods.
const tapBuffer = 200

// FrameSource hands out PCM taps. *audio.Bus implements it.
type FrameSource interface {
	Subscribe(size int) *audio.Tap
	Unsubscribe(t *audio.Tap)
}

// decoder is the subset of *vosk.VoskRecognizer used by a stream.
type decoder interface {
	AcceptWaveform(buf []byte) int
	Result() string
	PartialResult() string
	FinalResult() string
	Free()
}

// Config locates the model.
type Config struct {
	ModelPath  string
	SampleRate int

	// Language is the BCP-47 tag of the model, such as "en-US". Open
	// rejects prompts in another language. Empty accepts any tag.
	Language string
}

// Vosk is a recording.Recognizer backed by one loaded model.
type Vosk struct {
	cfg    Config
	frames FrameSource
	log    *slog.Logger

	model      *vosk.VoskModel
	newDecoder func() (decoder, error)
}

// Option configures a Vosk recognizer.
type Option func(*Vosk)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(v *Vosk) { v.log = l }
}

// NewVosk loads the model at cfg.ModelPath. Loading takes a few seconds
// for the larger models.
func NewVosk(cfg Config, frames FrameSource, opts ...Option) (*Vosk, error) {
	vosk.SetLogLevel(-1)
	model, err := vosk.NewModel(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load vosk model %q: %w", cfg.ModelPath, err)
	}
	if model == nil {
		return nil, fmt.Errorf("load vosk model %q: no model returned", cfg.ModelPath)
	}

	v := newVosk(cfg, frames, opts...)
	v.model = model
	v.newDecoder = func() (decoder, error) {
		return vosk.NewRecognizer(model, float64(cfg.SampleRate))
	}
	return v, nil
}

func newVosk(cfg Config, frames FrameSource, opts ...Option) *Vosk {
	v := &Vosk{cfg: cfg, frames: frames, log: slog.Default()}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Close frees the model. Streams must be stopped first.
func (v *Vosk) Close() {
	if v.model != nil {
		v.model.Free()
		v.model = nil
	}
}

// Open starts a recognition stream over the frame source.
func (v *Vosk) Open(ctx context.Context, languageTag string) (recording.RecognizerStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !SameLanguage(v.cfg.Language, languageTag) {
		return nil, &recording.RecognizerError{Code: recording.CodeLanguageUnsupported}
	}
	dec, err := v.newDecoder()
	if err != nil {
		return nil, fmt.Errorf("create vosk recognizer: %w", err)
	}

	s := &stream{
		dec:    dec,
		frames: v.frames,
		tap:    v.frames.Subscribe(tapBuffer),
		events: make(chan recording.RecognizerEvent, 16),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		log:    v.log,
	}
	go s.run()
	return s, nil
}

// SameLanguage reports whether two BCP-47 tags share a primary language
// subtag. An empty model tag matches everything.
func SameLanguage(model, tag string) bool {
	if model == "" {
		return true
	}
	primary := func(t string) string {
		t = strings.ToLower(t)
		if i := strings.IndexAny(t, "-_"); i >= 0 {
			t = t[:i]
		}
		return t
	}
	return primary(model) == primary(tag)
}

type stream struct {
	dec    decoder
	frames FrameSource
	tap    *audio.Tap
	events chan recording.RecognizerEvent
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
	log    *slog.Logger

	lastPartial string
}

func (s *stream) Events() <-chan recording.RecognizerEvent { return s.events }

// Stop flushes the decoder's pending words as a final event and closes
// the event channel.
func (s *stream) Stop() error {
	s.once.Do(func() { close(s.stop) })
	<-s.done
	return nil
}

func (s *stream) run() {
	defer close(s.done)
	defer close(s.events)
	defer s.dec.Free()
	defer s.frames.Unsubscribe(s.tap)

	for {
		select {
		case frame, ok := <-s.tap.Frames():
			if !ok {
				s.log.Debug("frame source closed, ending stream")
				s.flush()
				return
			}
			s.accept(frame)
		case <-s.stop:
			s.flush()
			if n := s.tap.Dropped(); n > 0 {
				s.log.Warn("recognizer fell behind capture", "dropped_frames", n)
			}
			return
		}
	}
}

func (s *stream) accept(frame []byte) {
	if s.dec.AcceptWaveform(frame) > 0 {
		s.lastPartial = ""
		text := parseText(s.dec.Result(), "text")
		if text == "" {
			s.emit(recording.ErrorEvent(recording.CodeNoSpeech))
			return
		}
		s.emit(recording.FinalEvent(text))
		return
	}

	partial := parseText(s.dec.PartialResult(), "partial")
	if partial == "" || partial == s.lastPartial {
		return
	}
	s.lastPartial = partial
	s.emit(recording.InterimEvent(partial))
}

func (s *stream) flush() {
	if text := parseText(s.dec.FinalResult(), "text"); text != "" {
		s.events <- recording.FinalEvent(text)
	}
}

// emit delivers ev unless the stream is being stopped.
func (s *stream) emit(ev recording.RecognizerEvent) {
	select {
	case s.events <- ev:
	case <-s.stop:
	}
}

// parseText extracts one string field from a Vosk JSON result.
func parseText(raw, field string) string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return ""
	}
	var text string
	if err := json.Unmarshal(m[field], &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

var _ recording.Recognizer = (*Vosk)(nil)

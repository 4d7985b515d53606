package recording

import (
	"context"
	"time"
)

// EventKind tags a RecognizerEvent.
type EventKind int

const (
	EventInterim EventKind = iota
	EventFinal
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventInterim:
		return "interim"
	case EventFinal:
		return "final"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// RecognizerEvent is one message from a recognizer stream. Build values with
// InterimEvent, FinalEvent or ErrorEvent; Text is set for interim and final
// fragments, Code for errors.
type RecognizerEvent struct {
	Kind EventKind
	Text string
	Code string
}

// InterimEvent is a provisional fragment; the speaker is still talking.
func InterimEvent(text string) RecognizerEvent {
	return RecognizerEvent{Kind: EventInterim, Text: text}
}

// FinalEvent is a fragment the recognizer will not revise.
func FinalEvent(text string) RecognizerEvent {
	return RecognizerEvent{Kind: EventFinal, Text: text}
}

// ErrorEvent reports a recognizer or device error code such as "no-speech".
func ErrorEvent(code string) RecognizerEvent {
	return RecognizerEvent{Kind: EventError, Code: code}
}

// AudioArtifact is the audio captured during one session.
type AudioArtifact struct {
	Format     string // e.g. "wav"
	SampleRate int
	Data       []byte
	Duration   time.Duration
}

// Microphone grants access to an audio input device. Errors wrap
// ErrPermissionDenied or ErrDeviceUnavailable.
type Microphone interface {
	RequestCapture(ctx context.Context) (CaptureHandle, error)
}

// CaptureHandle is a running audio capture.
type CaptureHandle interface {
	// Stop ends the capture and returns everything recorded so far.
	Stop() (AudioArtifact, error)
}

// Recognizer opens streaming speech recognition for a language tag.
type Recognizer interface {
	Open(ctx context.Context, languageTag string) (RecognizerStream, error)
}

// RecognizerStream delivers recognition events until it ends. The Events
// channel is closed when the stream ends, whether through Stop or on its own.
// Fragments still buffered at Stop are delivered before the close.
type RecognizerStream interface {
	Events() <-chan RecognizerEvent
	Stop() error
}

package recording

import (
	"errors"
	"fmt"
)

var (
	// ErrPermissionDenied means the user or OS refused microphone access.
	ErrPermissionDenied = errors.New("recording: microphone permission denied")

	// ErrDeviceUnavailable means no usable capture device was found.
	ErrDeviceUnavailable = errors.New("recording: audio device unavailable")

	// ErrEmptyUtterance is the reason attached to a Cancelled result when
	// nothing usable was recognized.
	ErrEmptyUtterance = errors.New("recording: empty utterance")

	// ErrCancelled is the reason attached to a Cancelled result when the
	// session was stopped before it started listening.
	ErrCancelled = errors.New("recording: cancelled before listening")

	// ErrSessionActive is returned when a session is requested while another
	// one is still running.
	ErrSessionActive = errors.New("recording: a session is already active")

	// ErrSessionStarted is returned by Start on a session that already ran.
	ErrSessionStarted = errors.New("recording: session already started")
)

// RecognizerError is a fatal recognizer error. Transient codes never
// surface as a RecognizerError.
type RecognizerError struct {
	Code string
}

func (e *RecognizerError) Error() string {
	return fmt.Sprintf("recording: recognizer error %q", e.Code)
}

// Unwrap maps permission-class recognizer codes onto the capability
// sentinels so callers can use a single errors.Is check.
func (e *RecognizerError) Unwrap() error {
	switch e.Code {
	case CodeNotAllowed, CodePermissionDenied, CodeServiceNotAllowed:
		return ErrPermissionDenied
	case CodeAudioCapture:
		return ErrDeviceUnavailable
	}
	return nil
}

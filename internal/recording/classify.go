package recording

// Class is the recovery class of a recognizer error code.
type Class int

const (
	// Transient errors are absorbed; the session keeps listening.
	Transient Class = iota
	// Fatal errors end the session.
	Fatal
)

func (c Class) String() string {
	if c == Transient {
		return "transient"
	}
	return "fatal"
}

// Recognizer error codes.
const (
	CodeNoSpeech            = "no-speech"
	CodeAborted             = "aborted"
	CodeNotAllowed          = "not-allowed"
	CodePermissionDenied    = "permission-denied"
	CodeAudioCapture        = "audio-capture"
	CodeNetwork             = "network"
	CodeServiceNotAllowed   = "service-not-allowed"
	CodeLanguageUnsupported = "language-not-supported"
)

// Classify maps a recognizer error code to its recovery class. Only
// no-speech and aborted are transient; unknown codes are fatal.
func Classify(code string) Class {
	switch code {
	case CodeNoSpeech, CodeAborted:
		return Transient
	default:
		return Fatal
	}
}

package recording

import (
	"errors"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code string
		want Class
	}{
		{CodeNoSpeech, Transient},
		{CodeAborted, Transient},
		{CodeNotAllowed, Fatal},
		{CodePermissionDenied, Fatal},
		{CodeAudioCapture, Fatal},
		{CodeNetwork, Fatal},
		{CodeServiceNotAllowed, Fatal},
		{CodeLanguageUnsupported, Fatal},
		{"", Fatal},
		{"something-new", Fatal},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Classify(tt.code); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.code, got, tt.want)
			}
		})
	}
}

func TestRecognizerErrorUnwrap(t *testing.T) {
	if !errors.Is(&RecognizerError{Code: CodePermissionDenied}, ErrPermissionDenied) {
		t.Error("permission-denied should match ErrPermissionDenied")
	}
	if !errors.Is(&RecognizerError{Code: CodeAudioCapture}, ErrDeviceUnavailable) {
		t.Error("audio-capture should match ErrDeviceUnavailable")
	}
	if errors.Is(&RecognizerError{Code: CodeNetwork}, ErrPermissionDenied) {
		t.Error("network should not match ErrPermissionDenied")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := Config{MaxDuration: time.Second, MinDuration: 2 * time.Second, SilenceWindow: 0}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

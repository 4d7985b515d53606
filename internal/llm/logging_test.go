package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/echoz/internal/store"
)

// eventSink implements only AppendLLMRequest; other EventRepo methods
// panic through the nil embedded interface.
type eventSink struct {
	store.EventRepo

	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (s *eventSink) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, data)
	return s.err
}

func TestRecorder_PersistsEachCall(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"tip":"x"}`), Usage: Usage{InputTokens: 30, OutputTokens: 8, TotalTokens: 38}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	sink := &eventSink{}
	p := WithRecording(mock, "mock", sink, nil, nil)

	ctx := WithPurpose(context.Background(), "coach")
	req := UserPrompt("be brief", "compare these")
	req.Schema = tipSchema()

	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, req); err == nil {
		t.Fatal("expected error")
	}

	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sink.events))
	}
	okEv, failEv := sink.events[0], sink.events[1]
	if !okEv.Success || okEv.Purpose != "coach" || okEv.Provider != "mock" {
		t.Fatalf("unexpected success event: %+v", okEv)
	}
	if okEv.InputTokens != 30 || okEv.OutputTokens != 8 || okEv.ResponseBody != `{"tip":"x"}` {
		t.Fatalf("usage not captured: %+v", okEv)
	}
	for _, want := range []string{"[system]\nbe brief", "[user]\ncompare these", "[schema: test-tip]"} {
		if !strings.Contains(okEv.RequestBody, want) {
			t.Fatalf("request body missing %q:\n%s", want, okEv.RequestBody)
		}
	}
	if failEv.Success || !strings.Contains(failEv.ErrorMessage, "down") {
		t.Fatalf("unexpected failure event: %+v", failEv)
	}
}

func TestRecorder_SinkFailureDoesNotFailCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`"hi"`)})
	sink := &eventSink{err: errors.New("disk full")}
	p := WithRecording(mock, "mock", sink, nil, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("sink error leaked: %v", err)
	}
}

func TestNewProvider_WrapsRetryAndRecording(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	sink := &eventSink{}

	p, err := NewProvider(context.Background(), cfg, Deps{Events: sink})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	retry, ok := p.(*RetryProvider)
	if !ok {
		t.Fatalf("expected *RetryProvider, got %T", p)
	}
	if _, ok := retry.inner.(*Recorder); !ok {
		t.Fatalf("expected recorder under retry, got %T", retry.inner)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("unexpected model id %q", p.ModelID())
	}
}

func TestNewProvider_Rejects(t *testing.T) {
	if _, err := NewProvider(context.Background(), DefaultConfig(), Deps{}); err == nil {
		t.Fatal("expected error with no provider selected")
	}
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if _, err := NewProvider(context.Background(), cfg, Deps{}); err == nil {
		t.Fatal("expected error without an API key")
	}
}

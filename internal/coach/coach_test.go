package coach

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/echoz/internal/llm"
	"github.com/abhisek/echoz/internal/similarity"
)

func missedAttempt() Request {
	return Request{
		PromptID:   "en-cat-hat",
		Language:   "en-US",
		Expected:   "The cat sat on the hat.",
		Heard:      "the cat sat on a hut",
		Similarity: 0.72,
		Tier:       similarity.TierClose,
	}
}

func TestWords(t *testing.T) {
	got := words(`Don't stop, "vis-à-vis"! Über 2 cafés.`)
	want := []string{"don't", "stop", "vis-à-vis", "über", "2", "cafés"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("words() = %q, want %q", got, want)
	}
}

func TestDiffWords(t *testing.T) {
	tests := []struct {
		name                string
		expected, heard     string
		wantMissed, wantExt []string
	}{
		{"identical", "The cat sat.", "the cat sat", nil, nil},
		{"substitution", "The cat sat on the hat.", "the cat sat on a hut", []string{"the", "hat"}, []string{"a", "hut"}},
		{"dropped", "I would like a coffee", "I like coffee", []string{"would", "a"}, nil},
		{"repeated word counted once each", "the the", "the", []string{"the"}, nil},
		{"added", "Good morning", "good morning everyone", nil, []string{"everyone"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missed, extra := diffWords(tt.expected, tt.heard)
			if !reflect.DeepEqual(missed, tt.wantMissed) {
				t.Errorf("missed = %q, want %q", missed, tt.wantMissed)
			}
			if !reflect.DeepEqual(extra, tt.wantExt) {
				t.Errorf("extra = %q, want %q", extra, tt.wantExt)
			}
		})
	}
}

func TestRuleFeedback(t *testing.T) {
	tests := []struct {
		name      string
		expected  string
		heard     string
		wantFocus Focus
		wantInTip string
	}{
		{"swapped words", "The cat sat on the hat.", "the cat sat on a hut", FocusOther, `"the", "hat" came out as "a", "hut"`},
		{"missing", "I would like a coffee", "I like coffee", FocusMissingWords, `"would", "a"`},
		{"extra", "Good morning", "good morning everyone", FocusExtraWords, `"everyone"`},
		{"clipped ending", "Good morning", "good mornin", FocusOther, `"morning" came out as "mornin"`},
		{"only accents differ", "Ça va", "ca va", FocusOther, `"ça" came out as "ca"`},
		{"all there", "Good morning!", "good morning", FocusRhythm, "All the words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := ruleFeedback(Request{PromptID: "p", Expected: tt.expected, Heard: tt.heard})
			if fb.Source != SourceRules || fb.PromptID != "p" {
				t.Fatalf("unexpected header: %+v", fb)
			}
			if fb.Focus != tt.wantFocus {
				t.Errorf("focus = %q, want %q", fb.Focus, tt.wantFocus)
			}
			if !strings.Contains(fb.Tip, tt.wantInTip) {
				t.Errorf("tip %q does not contain %q", fb.Tip, tt.wantInTip)
			}
		})
	}
}

func TestQuoteListTruncates(t *testing.T) {
	got := quoteList([]string{"a", "b", "c", "d", "e"})
	if got != `"a", "b", "c" and 2 more` {
		t.Fatalf("quoteList() = %q", got)
	}
}

func TestTipper_ParsesStructuredTip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"tip":"Open your mouth wider on \"hat\".","focus":"vowels"}`),
	})
	tipper := NewTipper(mock, DefaultTipperConfig())
	req := missedAttempt()
	rules := ruleFeedback(req)

	fb, err := tipper.Tip(context.Background(), req, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Source != SourceLLM || fb.Focus != FocusVowels {
		t.Fatalf("unexpected feedback: %+v", fb)
	}
	if !reflect.DeepEqual(fb.Missed, rules.Missed) {
		t.Fatalf("word diff not carried over: %+v", fb)
	}

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Schema != TipSchema {
		t.Fatal("tip schema not requested")
	}
	prompt := calls[0].Messages[0].Content
	for _, want := range []string{
		"Target sentence: The cat sat on the hat.",
		"What was heard: the cat sat on a hut",
		"Similarity: 0.72 (close)",
		"Words not heard: the, hat",
		"Unexpected words: a, hut",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestTipper_RejectsBadOutput(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}},
		{"schema mismatch", llm.MockResponse{Content: json.RawMessage(`{"tip":"x","focus":"melody"}`)}},
		{"blank tip", llm.MockResponse{Content: json.RawMessage(`{"tip":"  ","focus":"other"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tipper := NewTipper(llm.NewMockProvider(tt.resp), DefaultTipperConfig())
			if _, err := tipper.Tip(context.Background(), missedAttempt(), nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestService_NoFeedbackForExcellentOrSilence(t *testing.T) {
	svc := NewService(nil, nil)
	defer svc.Close()

	req := missedAttempt()
	req.Tier = similarity.TierExcellent
	if fb := svc.Advise(context.Background(), req, nil); fb != nil {
		t.Fatalf("excellent attempt got feedback: %+v", fb)
	}

	req = missedAttempt()
	req.Heard = " ... "
	if fb := svc.Advise(context.Background(), req, nil); fb != nil {
		t.Fatalf("empty transcript got feedback: %+v", fb)
	}
}

func TestService_RulesOnlyWithoutProvider(t *testing.T) {
	svc := NewService(nil, nil)
	defer svc.Close()

	called := false
	fb := svc.Advise(context.Background(), missedAttempt(), func(*Feedback) { called = true })
	if fb == nil || fb.Source != SourceRules {
		t.Fatalf("expected rule feedback, got %+v", fb)
	}
	svc.Close()
	if called {
		t.Fatal("callback fired without a provider")
	}
}

func TestService_DeliversLLMTip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"tip":"Say \"hat\" with a wide, short a.","focus":"vowels"}`),
	})
	svc := NewService(mock, nil)
	defer svc.Close()

	got := make(chan *Feedback, 1)
	immediate := svc.Advise(context.Background(), missedAttempt(), func(fb *Feedback) { got <- fb })
	if immediate == nil || immediate.Source != SourceRules {
		t.Fatalf("expected immediate rule feedback, got %+v", immediate)
	}

	select {
	case fb := <-got:
		if fb.Source != SourceLLM || fb.PromptID != "en-cat-hat" {
			t.Fatalf("unexpected async feedback: %+v", fb)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for LLM tip")
	}
}

func TestService_CancelledCallerStillGetsTip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"tip":"Slow down.","focus":"rhythm"}`),
	})
	svc := NewService(mock, nil)

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan *Feedback, 1)
	svc.Advise(ctx, missedAttempt(), func(fb *Feedback) { got <- fb })
	cancel()
	svc.Close()

	select {
	case fb := <-got:
		if fb.Tip != "Slow down." {
			t.Fatalf("unexpected tip %q", fb.Tip)
		}
	default:
		t.Fatal("queued tip was not delivered before Close returned")
	}
}

func TestService_FailedTipIsDropped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, nil)

	called := false
	svc.Advise(context.Background(), missedAttempt(), func(*Feedback) { called = true })
	svc.Close()

	if called {
		t.Fatal("callback fired for a failed tip")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestService_AdviseAfterClose(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil)
	svc.Close()
	svc.Close()

	if fb := svc.Advise(context.Background(), missedAttempt(), func(*Feedback) {}); fb == nil {
		t.Fatal("rule feedback should survive Close")
	}
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func serve(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	p, err := NewAnthropicProvider(
		BackendConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(serve(t, handler)),
		option.WithMaxRetries(0),
	)
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	return p
}

func TestAnthropicProvider_StructuredTip(t *testing.T) {
	var got map[string]any
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": `{"tip":"Open the vowel in 'hat'.","focus":"vowel"}`}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 12},
		})
	})

	req := UserPrompt("You are a pronunciation coach.", "Target: The cat sat on the hat.")
	req.MaxTokens = 200
	req.Schema = tipSchema()
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 62 {
		t.Fatalf("expected 62 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if resp.StopReason != StopEnd {
		t.Fatalf("expected %q, got %q", StopEnd, resp.StopReason)
	}
	if got["model"] != "claude-haiku-4-5-20251001" {
		t.Fatalf("alias not resolved, request model = %v", got["model"])
	}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Fatalf("unexpected model id %q", p.ModelID())
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": `{"tip":"Open the`}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "max_tokens",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 4},
		})
	})
	req := UserPrompt("", "x")
	req.MaxTokens = 4
	req.Schema = tipSchema()
	_, err := p.Generate(context.Background(), req)
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestAnthropicProvider_RateLimit(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "2")
		writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
		})
	})
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, MaxTokens: 10})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
	if rl.RetryAfter != 2*time.Second {
		t.Fatalf("expected RetryAfter 2s, got %v", rl.RetryAfter)
	}
}

func TestAnthropicProvider_ServerError(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "boom"},
		})
	})
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, MaxTokens: 10})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	p, err := NewOpenAIProvider(BackendConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: serve(t, handler) + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1767225600,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 10, "total_tokens": 50},
	}
}

func TestOpenAIProvider_StructuredTip(t *testing.T) {
	var got map[string]any
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, chatCompletion(`{"tip":"Link 'sat on' together.","focus":"rhythm"}`, "stop"))
	})

	req := UserPrompt("You are a pronunciation coach.", "Target: The cat sat on the hat.")
	req.Schema = tipSchema()
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 50 || resp.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Fatalf("expected json_schema response format, got %v", format["type"])
	}
}

func TestOpenAIProvider_SchemaMismatch(t *testing.T) {
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, chatCompletion(`{"advice":"speak up"}`, "stop"))
	})
	req := UserPrompt("", "x")
	req.Schema = tipSchema()
	_, err := p.Generate(context.Background(), req)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"server error", http.StatusBadGateway, func(err error) bool {
			var unavail *ErrProviderUnavailable
			return errors.As(err, &unavail)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]any{
					"error": map[string]any{"message": "nope", "type": "server_error"},
				})
			})
			_, err := p.Generate(context.Background(), UserPrompt("", "x"))
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error %T (%v)", err, err)
			}
		})
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(tipSchema().Definition)

	if s.Type != "OBJECT" {
		t.Fatalf("expected OBJECT, got %s", s.Type)
	}
	if len(s.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(s.Properties))
	}
	if s.Properties["tip"].Type != "STRING" {
		t.Fatalf("expected STRING tip, got %s", s.Properties["tip"].Type)
	}
	if got := s.Properties["focus"].Enum; len(got) != 3 || got[0] != "vowel" {
		t.Fatalf("enum not converted: %v", got)
	}
	if len(s.Required) != 1 || s.Required[0] != "tip" {
		t.Fatalf("required not converted: %v", s.Required)
	}

	decoded := map[string]any{"type": "array", "items": map[string]any{"type": "integer"}, "required": []any{"x"}}
	arr := geminiSchema(decoded)
	if arr.Type != "ARRAY" || arr.Items.Type != "INTEGER" || len(arr.Required) != 1 {
		t.Fatalf("decoded-JSON shapes not handled: %+v", arr)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.5-flash" {
		t.Fatalf("alias: got %q", got)
	}
	if got := resolveModel("gemini-2.0-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Fatalf("pass-through: got %q", got)
	}
}

func TestRetryAfterHeader(t *testing.T) {
	h := http.Header{}
	if retryAfter(h) != 0 || retryAfter(nil) != 0 {
		t.Fatal("missing header should be zero")
	}
	h.Set("Retry-After", "7")
	if retryAfter(h) != 7*time.Second {
		t.Fatalf("got %v", retryAfter(h))
	}
	h.Set("Retry-After", "Wed, 21 Oct 2026 07:28:00 GMT")
	if retryAfter(h) != 0 {
		t.Fatal("http-date form is not supported and should be zero")
	}
}

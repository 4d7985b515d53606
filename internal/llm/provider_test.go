package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func tipSchema() *Schema {
	return &Schema{
		Name: "test-tip",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tip":   map[string]any{"type": "string"},
				"focus": map[string]any{"type": "string", "enum": []string{"vowel", "consonant", "rhythm"}},
			},
			"required":             []string{"tip"},
			"additionalProperties": false,
		},
	}
}

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	first, err := mock.Generate(context.Background(), UserPrompt("", "one"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"a":1}` || first.Usage.InputTokens != 10 {
		t.Fatalf("unexpected first response: %+v", first)
	}
	if first.StopReason != StopEnd {
		t.Fatalf("expected stop reason %q, got %q", StopEnd, first.StopReason)
	}

	second, err := mock.Generate(context.Background(), UserPrompt("", "two"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"b":2}` {
		t.Fatalf("unexpected second content: %s", second.Content)
	}

	calls := mock.Calls()
	if len(calls) != 2 || calls[1].Messages[0].Content != "two" {
		t.Fatalf("calls not recorded: %+v", calls)
	}
}

func TestMockProvider_DrainedQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}

	mock.Fallback = func(req Request) MockResponse {
		return MockResponse{Content: json.RawMessage(`{"tip":"slow down"}`)}
	}
	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"tip":"slow down"}` {
		t.Fatalf("fallback not used: %s", resp.Content)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"tip":"Stress the second syllable.","focus":"rhythm"}`)},
		MockResponse{Content: json.RawMessage(`{"focus":"tone"}`)},
	)
	req := UserPrompt("coach", "compare")
	req.Schema = tipSchema()

	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("valid content rejected: %v", err)
	}
	_, err := mock.Generate(context.Background(), req)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := mock.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"tip":"Round your lips.","focus":"vowel"}`, false},
		{"optional omitted", `{"tip":"Round your lips."}`, false},
		{"missing required", `{"focus":"vowel"}`, true},
		{"enum violated", `{"tip":"x","focus":"melody"}`, true},
		{"extra property", `{"tip":"x","mood":"happy"}`, true},
		{"wrong type", `{"tip":3}`, true},
		{"not json", `Round your lips.`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tipSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should accept anything: %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "coach")); p != "coach" {
		t.Fatalf("expected 'coach', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	key := BackendConfig{APIKey: "sk-test"}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"disabled", func(c *Config) {}, false},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic = key }, false},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini = key }, false},
		{"unknown provider", func(c *Config) { c.Provider = "parrot" }, true},
		{"zero attempts", func(c *Config) { c.Provider = "mock"; c.Retry.MaxAttempts = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"ECHOZ_LLM_PROVIDER", "ECHOZ_ANTHROPIC_API_KEY", "ECHOZ_ANTHROPIC_MODEL",
		"ECHOZ_OPENAI_API_KEY", "ECHOZ_OPENAI_MODEL", "ECHOZ_OPENAI_BASE_URL",
		"ECHOZ_GEMINI_API_KEY", "ECHOZ_GEMINI_MODEL",
	} {
		t.Setenv(k, "")
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ECHOZ_LLM_PROVIDER", "openai")
	t.Setenv("ECHOZ_OPENAI_API_KEY", "sk-env")
	t.Setenv("ECHOZ_OPENAI_BASE_URL", "http://localhost:8080/v1")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-env" {
		t.Fatalf("env not applied: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Fatalf("base url not applied: %q", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Fatalf("default model lost: %q", cfg.OpenAI.Model)
	}
}

func TestConfig_Discover(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		clearKeyEnv(t)
		cfg := DefaultConfig()
		if cfg.Discover() {
			t.Fatal("expected no provider")
		}
	})
	t.Run("gemini preferred", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "a")
		t.Setenv("GEMINI_API_KEY", "g")
		cfg := DefaultConfig()
		if !cfg.Discover() || cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g" {
			t.Fatalf("unexpected discovery: %+v", cfg)
		}
	})
	t.Run("openrouter uses openai backend", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("OPENROUTER_API_KEY", "or")
		cfg := DefaultConfig()
		if !cfg.Discover() || cfg.Provider != "openai" {
			t.Fatalf("unexpected provider %q", cfg.Provider)
		}
		if cfg.OpenAI.BaseURL != openRouterBaseURL || cfg.OpenAI.APIKey != "or" {
			t.Fatalf("openrouter not wired: %+v", cfg.OpenAI)
		}
	})
	t.Run("explicit provider kept", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("GEMINI_API_KEY", "g")
		cfg := DefaultConfig()
		cfg.Provider = "mock"
		if !cfg.Discover() || cfg.Provider != "mock" {
			t.Fatalf("explicit provider overridden: %q", cfg.Provider)
		}
	})
}

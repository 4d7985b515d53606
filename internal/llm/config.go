package llm

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// Config selects and configures the coaching backend. API keys are read
// from the environment only and never serialized.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock" or "" (off).
	Provider string `yaml:"provider"`

	Anthropic BackendConfig `yaml:"anthropic"`
	OpenAI    BackendConfig `yaml:"openai"`
	Gemini    BackendConfig `yaml:"gemini"`
	Retry     RetryConfig   `yaml:"retry"`

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration `yaml:"timeout"`
}

// BackendConfig is shared by all hosted backends. BaseURL is only honoured
// by the OpenAI backend, which also serves OpenRouter and other compatible
// APIs.
type BackendConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig leaves coaching off and picks small, cheap models for each
// backend.
func DefaultConfig() Config {
	return Config{
		Anthropic: BackendConfig{Model: "claude-haiku"},
		OpenAI:    BackendConfig{Model: "gpt-4o-mini"},
		Gemini:    BackendConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// Enabled reports whether a backend was selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// ApplyEnv overlays ECHOZ_* variables onto c.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.Provider, "ECHOZ_LLM_PROVIDER")

	setFromEnv(&c.Anthropic.APIKey, "ECHOZ_ANTHROPIC_API_KEY")
	setFromEnv(&c.Anthropic.Model, "ECHOZ_ANTHROPIC_MODEL")

	setFromEnv(&c.OpenAI.APIKey, "ECHOZ_OPENAI_API_KEY")
	setFromEnv(&c.OpenAI.Model, "ECHOZ_OPENAI_MODEL")
	setFromEnv(&c.OpenAI.BaseURL, "ECHOZ_OPENAI_BASE_URL")

	setFromEnv(&c.Gemini.APIKey, "ECHOZ_GEMINI_API_KEY")
	setFromEnv(&c.Gemini.Model, "ECHOZ_GEMINI_MODEL")
}

// Discover fills in a provider from the vendors' standard key variables
// when none was chosen explicitly. Gemini wins over OpenAI, OpenAI over
// Anthropic; an OPENROUTER_API_KEY routes the OpenAI backend through
// OpenRouter. It reports whether a provider is set afterwards.
func (c *Config) Discover() bool {
	if c.Provider != "" {
		return true
	}
	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		c.Provider = "gemini"
		c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		c.Provider = "openai"
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		c.Provider = "anthropic"
		c.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		c.Provider = "openai"
		c.OpenAI.APIKey = os.Getenv("OPENROUTER_API_KEY")
		if c.OpenAI.BaseURL == "" {
			c.OpenAI.BaseURL = openRouterBaseURL
		}
	default:
		return false
	}
	return true
}

// Validate checks the selected backend has what it needs.
func (c Config) Validate() error {
	var errs []error
	switch c.Provider {
	case "", "mock":
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			errs = append(errs, errors.New("ECHOZ_ANTHROPIC_API_KEY is required for the anthropic provider"))
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			errs = append(errs, errors.New("ECHOZ_OPENAI_API_KEY is required for the openai provider"))
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			errs = append(errs, errors.New("ECHOZ_GEMINI_API_KEY is required for the gemini provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LLM provider: %q", c.Provider))
	}
	if c.Enabled() && c.Retry.MaxAttempts < 1 {
		errs = append(errs, errors.New("retry.max_attempts must be at least 1"))
	}
	return errors.Join(errs...)
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

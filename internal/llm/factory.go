package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/echoz/internal/observe"
	"github.com/abhisek/echoz/internal/store"
)

// Deps are the sinks a provider reports to.
type Deps struct {
	Events  store.EventRepo
	Metrics *observe.Metrics
	Logger  *slog.Logger
}

// NewProvider builds the backend selected by cfg, wrapped as
// caller → retry → recording → backend so each attempt is recorded.
func NewProvider(ctx context.Context, cfg Config, deps Deps) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("no LLM provider configured")
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	recorded := WithRecording(base, cfg.Provider, deps.Events, deps.Metrics, deps.Logger)
	return WithRetry(recorded, cfg.Retry), nil
}

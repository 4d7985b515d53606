package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/echoz/internal/llm"
)

// TipperConfig tunes the LLM request.
type TipperConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultTipperConfig returns small, mostly deterministic settings.
func DefaultTipperConfig() TipperConfig {
	return TipperConfig{MaxTokens: 200, Temperature: 0.3}
}

// Tipper asks an LLM for a tip.
type Tipper struct {
	provider llm.Provider
	cfg      TipperConfig
}

// NewTipper creates a Tipper.
func NewTipper(provider llm.Provider, cfg TipperConfig) *Tipper {
	return &Tipper{provider: provider, cfg: cfg}
}

type tipOutput struct {
	Tip   string `json:"tip"`
	Focus Focus  `json:"focus"`
}

// Tip requests a tip for req. rules is the synchronous feedback; its word
// diff is passed to the model and carried over to the result.
func (t *Tipper) Tip(ctx context.Context, req Request, rules *Feedback) (*Feedback, error) {
	msg, err := renderTipPrompt(req, rules)
	if err != nil {
		return nil, fmt.Errorf("build tip prompt: %w", err)
	}

	resp, err := t.provider.Generate(llm.WithPurpose(ctx, "coach"), llm.Request{
		System:      tipSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: msg}},
		Schema:      TipSchema,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("coach tip: %w", err)
	}

	var out tipOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse coach tip: %w", err)
	}
	tip := strings.TrimSpace(out.Tip)
	if tip == "" {
		return nil, fmt.Errorf("coach tip: empty tip")
	}

	fb := &Feedback{PromptID: req.PromptID, Source: SourceLLM, Focus: out.Focus, Tip: tip}
	if rules != nil {
		fb.Missed, fb.Extra = rules.Missed, rules.Extra
	}
	return fb, nil
}

const tipSystemPrompt = `You are a patient pronunciation coach. A learner read a sentence aloud and a speech recognizer transcribed what it heard. Differences between the two usually come from pronunciation, not from the recognizer.

Instructions:
- Give exactly one tip, one sentence, addressed to the learner as "you".
- Be concrete: name the word or sound to change and how.
- Write the tip in English, but quote words in the sentence's language.
- Never mention the recognizer, scores or percentages.`

var tipTemplate = template.Must(template.New("tip").Funcs(template.FuncMap{"join": strings.Join}).Parse(`Language: {{.Req.Language}}
Target sentence: {{.Req.Expected}}
What was heard: {{.Req.Heard}}
Similarity: {{printf "%.2f" .Req.Similarity}} ({{.Req.Tier}})
{{- with .Missed}}
Words not heard: {{join . ", "}}{{end}}
{{- with .Extra}}
Unexpected words: {{join . ", "}}{{end}}
`))

func renderTipPrompt(req Request, rules *Feedback) (string, error) {
	data := struct {
		Req           Request
		Missed, Extra []string
	}{Req: req}
	if rules != nil {
		data.Missed, data.Extra = rules.Missed, rules.Extra
	}
	var buf bytes.Buffer
	if err := tipTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

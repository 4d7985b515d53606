package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/echoz/internal/observe"
	"github.com/abhisek/echoz/internal/store"
)

// Recorder decorates a Provider so every call is persisted as an LLM
// request event and counted in metrics. A failure to persist is logged and
// never fails the call.
type Recorder struct {
	inner   Provider
	backend string
	events  store.EventRepo
	metrics *observe.Metrics
	log     *slog.Logger
}

// WithRecording wraps p. events and metrics may be nil.
func WithRecording(p Provider, backend string, events store.EventRepo, metrics *observe.Metrics, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{inner: p, backend: backend, events: events, metrics: metrics, log: log}
}

func (r *Recorder) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)
	latency := time.Since(start)

	r.metrics.LLMRequest(ctx, r.backend, latency, err)

	data := store.LLMRequestEventData{
		Provider:    r.backend,
		Model:       r.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		r.log.Debug("llm request failed", "backend", r.backend, "purpose", data.Purpose, "err", err)
	}

	if r.events != nil {
		if perr := r.events.AppendLLMRequest(context.WithoutCancel(ctx), data); perr != nil {
			r.log.Warn("persist llm request event", "err", perr)
		}
	}
	return resp, err
}

func (r *Recorder) ModelID() string {
	return r.inner.ModelID()
}

// renderRequest flattens a request into the text shown by `echoz llm view`.
func renderRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}

// Package observe provides the OpenTelemetry metrics used across echoz and
// the Prometheus bridge that exposes them on /metrics.
//
// Tests should build their own [Metrics] with [NewMetrics] and an
// sdkmetric.ManualReader. Every recording helper is safe to call on a nil
// *Metrics, which lets packages treat metrics as optional.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/abhisek/echoz"

// Metrics holds all metric instruments.
type Metrics struct {
	// SessionsStarted counts recording sessions that left Idle.
	SessionsStarted metric.Int64Counter

	// SessionsEnded counts finished sessions. Attribute: outcome.
	SessionsEnded metric.Int64Counter

	// ActiveSessions is the number of sessions not yet terminal.
	ActiveSessions metric.Int64UpDownCounter

	// RecognizerReopens counts streams reopened after ending on their own.
	RecognizerReopens metric.Int64Counter

	// TransientErrors counts absorbed recognizer errors. Attribute: code.
	TransientErrors metric.Int64Counter

	// UtteranceDuration is the listening time of each finished session.
	UtteranceDuration metric.Float64Histogram

	// Similarity is the score of each evaluated attempt. Attribute: tier.
	Similarity metric.Float64Histogram

	// LLMRequests counts coach calls. Attributes: provider, status.
	LLMRequests metric.Int64Counter

	// LLMDuration is the latency of coach calls.
	LLMDuration metric.Float64Histogram
}

var durationBuckets = []float64{0.5, 1, 2, 3, 5, 8, 13, 20, 30, 45}

var similarityBuckets = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.85, 0.9, 0.95, 1}

var latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// NewMetrics creates every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.SessionsStarted, err = m.Int64Counter("echoz.sessions.started",
		metric.WithDescription("Recording sessions started."),
	); err != nil {
		return nil, err
	}
	if met.SessionsEnded, err = m.Int64Counter("echoz.sessions.ended",
		metric.WithDescription("Recording sessions ended, by outcome."),
	); err != nil {
		return nil, err
	}
	if met.ActiveSessions, err = m.Int64UpDownCounter("echoz.sessions.active",
		metric.WithDescription("Recording sessions not yet terminal."),
	); err != nil {
		return nil, err
	}
	if met.RecognizerReopens, err = m.Int64Counter("echoz.recognizer.reopens",
		metric.WithDescription("Recognizer streams reopened after ending on their own."),
	); err != nil {
		return nil, err
	}
	if met.TransientErrors, err = m.Int64Counter("echoz.recognizer.transient_errors",
		metric.WithDescription("Transient recognizer errors absorbed, by code."),
	); err != nil {
		return nil, err
	}
	if met.UtteranceDuration, err = m.Float64Histogram("echoz.utterance.duration",
		metric.WithDescription("Listening time per finished session."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Similarity, err = m.Float64Histogram("echoz.attempt.similarity",
		metric.WithDescription("Similarity of scored attempts, by tier."),
		metric.WithExplicitBucketBoundaries(similarityBuckets...),
	); err != nil {
		return nil, err
	}
	if met.LLMRequests, err = m.Int64Counter("echoz.llm.requests",
		metric.WithDescription("Coach LLM requests, by provider and status."),
	); err != nil {
		return nil, err
	}
	if met.LLMDuration, err = m.Float64Histogram("echoz.llm.duration",
		metric.WithDescription("Coach LLM request latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns a package-level Metrics built on the global
// meter provider. Call InitProvider first for the instruments to be exported.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// SessionStarted records a session leaving Idle.
func (m *Metrics) SessionStarted(ctx context.Context) {
	if m == nil {
		return
	}
	m.SessionsStarted.Add(ctx, 1)
	m.ActiveSessions.Add(ctx, 1)
}

// SessionEnded records a terminal session and how long it listened.
func (m *Metrics) SessionEnded(ctx context.Context, outcome string, listened time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.SessionsEnded.Add(ctx, 1, attrs)
	m.ActiveSessions.Add(ctx, -1)
	if listened > 0 {
		m.UtteranceDuration.Record(ctx, listened.Seconds(), attrs)
	}
}

// RecognizerReopened records one transparent stream reopen.
func (m *Metrics) RecognizerReopened(ctx context.Context) {
	if m == nil {
		return
	}
	m.RecognizerReopens.Add(ctx, 1)
}

// TransientError records one absorbed recognizer error.
func (m *Metrics) TransientError(ctx context.Context, code string) {
	if m == nil {
		return
	}
	m.TransientErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
}

// AttemptScored records the similarity of an evaluated attempt.
func (m *Metrics) AttemptScored(ctx context.Context, similarity float64, tier string) {
	if m == nil {
		return
	}
	m.Similarity.Record(ctx, similarity, metric.WithAttributes(attribute.String("tier", tier)))
}

// LLMRequest records one coach call.
func (m *Metrics) LLMRequest(ctx context.Context, provider string, latency time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.LLMRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("status", status),
	))
	m.LLMDuration.Record(ctx, latency.Seconds(), metric.WithAttributes(attribute.String("provider", provider)))
}

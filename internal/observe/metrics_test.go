package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumOf(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "unexpected data type %T", m.Data)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestSessionLifecycle(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.SessionStarted(ctx)
	m.SessionStarted(ctx)
	m.SessionEnded(ctx, "scored", 4*time.Second)

	rm := collect(t, reader)
	assert.Equal(t, int64(2), sumOf(t, findMetric(rm, "echoz.sessions.started")))
	assert.Equal(t, int64(1), sumOf(t, findMetric(rm, "echoz.sessions.ended")))
	assert.Equal(t, int64(1), sumOf(t, findMetric(rm, "echoz.sessions.active")))

	hist := findMetric(rm, "echoz.utterance.duration")
	require.NotNil(t, hist)
	data := hist.Data.(metricdata.Histogram[float64])
	require.Len(t, data.DataPoints, 1)
	assert.Equal(t, uint64(1), data.DataPoints[0].Count)
	assert.InDelta(t, 4.0, data.DataPoints[0].Sum, 1e-9)
}

func TestCountersWithAttributes(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.TransientError(ctx, "no-speech")
	m.TransientError(ctx, "aborted")
	m.RecognizerReopened(ctx)
	m.LLMRequest(ctx, "anthropic", 200*time.Millisecond, nil)
	m.LLMRequest(ctx, "anthropic", time.Second, errors.New("boom"))
	m.AttemptScored(ctx, 0.9, "excellent")

	rm := collect(t, reader)
	assert.Equal(t, int64(2), sumOf(t, findMetric(rm, "echoz.recognizer.transient_errors")))
	assert.Equal(t, int64(1), sumOf(t, findMetric(rm, "echoz.recognizer.reopens")))

	llm := findMetric(rm, "echoz.llm.requests")
	require.NotNil(t, llm)
	assert.Len(t, llm.Data.(metricdata.Sum[int64]).DataPoints, 2, "ok and error statuses are separate series")
	assert.NotNil(t, findMetric(rm, "echoz.attempt.similarity"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.SessionStarted(ctx)
		m.SessionEnded(ctx, "cancelled", 0)
		m.RecognizerReopened(ctx)
		m.TransientError(ctx, "no-speech")
		m.AttemptScored(ctx, 1, "excellent")
		m.LLMRequest(ctx, "mock", 0, nil)
	})
}

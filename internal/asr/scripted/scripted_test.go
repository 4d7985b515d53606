package scripted

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/echoz/internal/recording"
)

func collect(t *testing.T, ch <-chan recording.RecognizerEvent, n int) []recording.RecognizerEvent {
	t.Helper()
	var out []recording.RecognizerEvent
	for range n {
		select {
		case ev, ok := <-ch:
			require.True(t, ok, "channel closed after %d events", len(out))
			out = append(out, ev)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d events", len(out))
		}
	}
	return out
}

func TestRecognizer_SayBeforeOpen(t *testing.T) {
	r := New(0)
	r.Say("the quick  fox")

	st, err := r.Open(context.Background(), "en-US")
	require.NoError(t, err)

	got := collect(t, st.Events(), 3)
	assert.Equal(t, []recording.RecognizerEvent{
		recording.InterimEvent("the"),
		recording.InterimEvent("the quick"),
		recording.FinalEvent("the quick fox"),
	}, got)

	require.NoError(t, st.Stop())
	_, open := <-st.Events()
	assert.False(t, open)
	assert.Equal(t, []string{"en-US"}, r.Languages())
}

func TestRecognizer_SayAfterOpen(t *testing.T) {
	r := New(0)
	st, err := r.Open(context.Background(), "fr-FR")
	require.NoError(t, err)

	r.Say("bonjour")
	assert.Equal(t, []recording.RecognizerEvent{recording.FinalEvent("bonjour")}, collect(t, st.Events(), 1))

	r.Say("   ")
	assert.Equal(t, []recording.RecognizerEvent{recording.ErrorEvent(recording.CodeNoSpeech)}, collect(t, st.Events(), 1))

	require.NoError(t, st.Stop())
}

func TestRecognizer_StopMidLineDeliversFinal(t *testing.T) {
	r := New(time.Hour)
	st, err := r.Open(context.Background(), "en-US")
	require.NoError(t, err)
	r.Say("one two three")

	stopped := make(chan error, 1)
	go func() { stopped <- st.Stop() }()

	var events []recording.RecognizerEvent
	for ev := range st.Events() {
		events = append(events, ev)
	}
	require.NoError(t, <-stopped)
	require.NotEmpty(t, events)
	assert.Equal(t, recording.FinalEvent("one two three"), events[len(events)-1])
}

func TestRecognizer_LinesAfterStopWaitForNextStream(t *testing.T) {
	r := New(0)
	first, err := r.Open(context.Background(), "en-US")
	require.NoError(t, err)
	require.NoError(t, first.Stop())

	r.Say("next one")
	second, err := r.Open(context.Background(), "en-US")
	require.NoError(t, err)
	got := collect(t, second.Events(), 2)
	assert.Equal(t, recording.FinalEvent("next one"), got[1])
	require.NoError(t, second.Stop())
}

func TestMicrophone_ReturnsSilentWAV(t *testing.T) {
	h, err := Microphone{SampleRate: 16000}.RequestCapture(context.Background())
	require.NoError(t, err)
	art, err := h.Stop()
	require.NoError(t, err)
	assert.Equal(t, "wav", art.Format)
	assert.Equal(t, 16000, art.SampleRate)
	assert.GreaterOrEqual(t, len(art.Data), 44)
}

package asr

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/echoz/internal/audio"
	"github.com/abhisek/echoz/internal/recording"
)

type step struct {
	endpoint bool
	json     string
}

type fakeDecoder struct {
	mu    sync.Mutex
	steps []step
	cur   step
	final string
	freed bool
}

func (d *fakeDecoder) AcceptWaveform([]byte) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cur, d.steps = d.steps[0], d.steps[1:]
	if d.cur.endpoint {
		return 1
	}
	return 0
}

func (d *fakeDecoder) Result() string        { return d.cur.json }
func (d *fakeDecoder) PartialResult() string { return d.cur.json }
func (d *fakeDecoder) FinalResult() string   { return d.final }

func (d *fakeDecoder) Free() {
	d.mu.Lock()
	d.freed = true
	d.mu.Unlock()
}

func (d *fakeDecoder) isFreed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.freed
}

func newTestVosk(cfg Config, bus *audio.Bus, dec *fakeDecoder) *Vosk {
	v := newVosk(cfg, bus)
	v.newDecoder = func() (decoder, error) { return dec, nil }
	return v
}

func next(t *testing.T, ch <-chan recording.RecognizerEvent) recording.RecognizerEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "event channel closed early")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return recording.RecognizerEvent{}
	}
}

func waitClosed(t *testing.T, ch <-chan recording.RecognizerEvent) {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.False(t, ok, "unexpected event %+v", ev)
	case <-time.After(2 * time.Second):
		t.Fatal("event channel not closed")
	}
}

func TestVoskStream_TranslatesResults(t *testing.T) {
	bus := audio.NewBus()
	dec := &fakeDecoder{
		steps: []step{
			{json: `{"partial": "hello"}`},
			{json: `{"partial": "hello"}`},
			{json: `{"partial": ""}`},
			{json: `{"partial": "hello world"}`},
			{endpoint: true, json: `{"text": "hello world"}`},
			{endpoint: true, json: `{"text": ""}`},
		},
		final: `{"text": "again"}`,
	}
	v := newTestVosk(Config{SampleRate: 16000}, bus, dec)

	st, err := v.Open(context.Background(), "en-US")
	require.NoError(t, err)
	require.Equal(t, 1, bus.Len())

	for range 6 {
		bus.Publish(make([]byte, 320))
	}

	assert.Equal(t, recording.InterimEvent("hello"), next(t, st.Events()))
	assert.Equal(t, recording.InterimEvent("hello world"), next(t, st.Events()))
	assert.Equal(t, recording.FinalEvent("hello world"), next(t, st.Events()))
	assert.Equal(t, recording.ErrorEvent(recording.CodeNoSpeech), next(t, st.Events()))

	require.NoError(t, st.Stop())
	assert.Equal(t, recording.FinalEvent("again"), next(t, st.Events()), "pending words flushed at stop")
	waitClosed(t, st.Events())

	assert.True(t, dec.isFreed())
	assert.Zero(t, bus.Len())
	assert.NoError(t, st.Stop(), "second stop is a no-op")
}

func TestVoskStream_EndsWhenSourceCloses(t *testing.T) {
	bus := audio.NewBus()
	dec := &fakeDecoder{final: `{"text": ""}`}
	v := newTestVosk(Config{SampleRate: 16000}, bus, dec)

	st, err := v.Open(context.Background(), "en-US")
	require.NoError(t, err)

	bus.Unsubscribe(st.(*stream).tap)
	waitClosed(t, st.Events())
	assert.True(t, dec.isFreed())
	require.NoError(t, st.Stop())
}

func TestVosk_OpenRejectsOtherLanguages(t *testing.T) {
	v := newTestVosk(Config{Language: "en-US"}, audio.NewBus(), &fakeDecoder{})

	_, err := v.Open(context.Background(), "de-DE")
	var rerr *recording.RecognizerError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, recording.CodeLanguageUnsupported, rerr.Code)
	assert.Equal(t, recording.Fatal, recording.Classify(rerr.Code))

	st, err := v.Open(context.Background(), "en-GB")
	require.NoError(t, err)
	require.NoError(t, st.Stop())
}

func TestVosk_OpenDecoderError(t *testing.T) {
	bus := audio.NewBus()
	v := newVosk(Config{}, bus)
	v.newDecoder = func() (decoder, error) { return nil, errors.New("bad sample rate") }

	_, err := v.Open(context.Background(), "en-US")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad sample rate")
	assert.Zero(t, bus.Len())
}

func TestSameLanguage(t *testing.T) {
	cases := []struct {
		model, tag string
		want       bool
	}{
		{"", "fr-FR", true},
		{"en-US", "en-GB", true},
		{"en", "EN-us", true},
		{"pt_BR", "pt-PT", true},
		{"en-US", "es-ES", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SameLanguage(tc.model, tc.tag), "%s vs %s", tc.model, tc.tag)
	}
}

func TestParseText(t *testing.T) {
	assert.Equal(t, "one two", parseText(`{"text" : " one two "}`, "text"))
	assert.Equal(t, "hi", parseText(`{"partial" : "hi"}`, "partial"))
	assert.Empty(t, parseText(`{"partial" : "hi"}`, "text"))
	assert.Empty(t, parseText(`not json`, "text"))
}

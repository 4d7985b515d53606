package recording_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/recording"
	"github.com/abhisek/echoz/internal/recording/mock"
)

var (
	t0     = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prompt = catalog.Prompt{ID: "en-1", Language: "en-US", Text: "hello world", Category: "greetings"}
)

const waitFor = 2 * time.Second

type harness struct {
	t       *testing.T
	clock   *mock.Clock
	mic     *mock.Microphone
	capture *mock.CaptureHandle
	rec     *mock.Recognizer
	s       *recording.Session
	ended   chan recording.Result

	mu      sync.Mutex
	updates []recording.Update
}

func newHarness(t *testing.T, streams ...*mock.Stream) *harness {
	t.Helper()
	h := &harness{
		t:       t,
		clock:   mock.NewClock(t0),
		capture: &mock.CaptureHandle{Artifact: recording.AudioArtifact{Format: "wav", SampleRate: 16000, Data: []byte("RIFF")}},
		rec:     &mock.Recognizer{Streams: streams},
		ended:   make(chan recording.Result, 4),
	}
	h.mic = &mock.Microphone{Handle: h.capture}
	h.s = recording.NewSession(prompt, h.mic, h.rec, recording.WithClock(h.clock))
	h.s.OnTranscript(func(u recording.Update) {
		h.mu.Lock()
		h.updates = append(h.updates, u)
		h.mu.Unlock()
	})
	h.s.OnEnded(func(r recording.Result) { h.ended <- r })
	t.Cleanup(h.s.Stop)
	return h
}

// listen starts the session and waits until it is Listening.
func (h *harness) listen() {
	h.t.Helper()
	require.NoError(h.t, h.s.Start(context.Background()))
	require.Eventually(h.t, func() bool {
		return h.s.State() == recording.Listening
	}, waitFor, time.Millisecond)
}

// deliver hands ev to the session and waits until it has been processed.
func (h *harness) deliver(ev recording.RecognizerEvent) {
	h.t.Helper()
	require.True(h.t, h.rec.Last().Send(ev), "stream closed before %v was delivered", ev)
	_ = h.s.State()
}

func (h *harness) result() recording.Result {
	h.t.Helper()
	select {
	case r := <-h.ended:
		return r
	case <-time.After(waitFor):
		h.t.Fatalf("session did not end; state %s", h.s.State())
		return recording.Result{}
	}
}

func (h *harness) assertReleased() {
	h.t.Helper()
	assert.Equal(h.t, 1, h.capture.StopCalls(), "capture handle stops")
	for i, st := range h.rec.Opened() {
		assert.True(h.t, st.IsEnded(), "stream %d left open", i)
	}
}

func TestSession_HappyPath(t *testing.T) {
	h := newHarness(t)
	h.listen()

	h.deliver(recording.InterimEvent("hel"))
	h.deliver(recording.InterimEvent("hello"))
	h.deliver(recording.InterimEvent("hello wor"))
	h.clock.Advance(2500 * time.Millisecond)
	h.deliver(recording.FinalEvent("hello world"))

	h.clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, recording.Listening, h.s.State())

	h.clock.Advance(time.Millisecond)
	res := h.result()
	assert.Equal(t, recording.Scored, res.State)
	assert.Equal(t, "hello world", res.Transcript)
	assert.Equal(t, "wav", res.Artifact.Format)
	assert.NoError(t, res.Err)
	assert.Equal(t, 5500*time.Millisecond, res.Listened)
	assert.Equal(t, recording.Scored, h.s.State())
	assert.Equal(t, []string{"en-US"}, h.rec.Languages())
	h.assertReleased()

	h.mu.Lock()
	defer h.mu.Unlock()
	require.Len(t, h.updates, 4)
	assert.Equal(t, "hello wor", h.updates[2].Text())
	assert.Equal(t, recording.EventFinal, h.updates[3].Kind)
	assert.Equal(t, "hello world", h.updates[3].Text())
}

func TestSession_FinalsConcatenate(t *testing.T) {
	h := newHarness(t)
	h.listen()

	h.clock.Advance(2 * time.Second)
	h.deliver(recording.FinalEvent("good"))
	h.deliver(recording.FinalEvent(" morning "))
	h.clock.Advance(3 * time.Second)

	res := h.result()
	assert.Equal(t, recording.Scored, res.State)
	assert.Equal(t, "good morning", res.Transcript)
}

func TestSession_ChattySpeakerKeepsListening(t *testing.T) {
	h := newHarness(t)
	h.listen()

	h.clock.Advance(2500 * time.Millisecond)
	h.deliver(recording.FinalEvent("hello"))
	h.clock.Advance(time.Second)
	h.deliver(recording.InterimEvent("and"))

	// The silence timer armed by the final would have fired at 5.5s.
	h.clock.Advance(2500 * time.Millisecond)
	assert.Equal(t, recording.Listening, h.s.State())

	h.deliver(recording.FinalEvent("and goodbye"))
	h.clock.Advance(3 * time.Second)
	res := h.result()
	assert.Equal(t, "hello and goodbye", res.Transcript)
}

func TestSession_FinalDuringGuardArmsRemainder(t *testing.T) {
	h := newHarness(t)
	h.listen()

	h.clock.Advance(time.Second)
	h.deliver(recording.FinalEvent("hi"))

	h.clock.Advance(time.Second) // guard elapses at 2s
	assert.Equal(t, recording.Listening, h.s.State())

	h.clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, recording.Listening, h.s.State())

	h.clock.Advance(time.Millisecond) // 3s after the final
	res := h.result()
	assert.Equal(t, recording.Scored, res.State)
	assert.Equal(t, "hi", res.Transcript)
}

func TestSession_MaxDuration(t *testing.T) {
	t.Run("empty transcript is cancelled", func(t *testing.T) {
		h := newHarness(t)
		h.listen()

		for i := range 30 {
			h.deliver(recording.InterimEvent(fmt.Sprintf("word %d", i)))
			h.clock.Advance(time.Second)
		}

		res := h.result()
		assert.Equal(t, recording.Cancelled, res.State)
		assert.ErrorIs(t, res.Err, recording.ErrEmptyUtterance)
		assert.Equal(t, 30*time.Second, res.Listened)
		h.assertReleased()
	})

	t.Run("final then continuous talking is scored", func(t *testing.T) {
		h := newHarness(t)
		h.listen()

		h.clock.Advance(2 * time.Second)
		h.deliver(recording.FinalEvent("first part"))
		for range 27 {
			h.clock.Advance(time.Second)
			h.deliver(recording.InterimEvent("still talking"))
		}
		assert.Equal(t, recording.Listening, h.s.State())

		h.clock.Advance(time.Second)
		res := h.result()
		assert.Equal(t, recording.Scored, res.State)
		assert.Equal(t, "first part", res.Transcript)
	})
}

func TestSession_TransientErrorsAbsorbed(t *testing.T) {
	h := newHarness(t)
	h.listen()

	h.deliver(recording.ErrorEvent(recording.CodeNoSpeech))
	assert.Equal(t, recording.Listening, h.s.State())
	h.deliver(recording.ErrorEvent(recording.CodeAborted))
	assert.Equal(t, recording.Listening, h.s.State())

	assert.Len(t, h.rec.Opened(), 1)
	assert.Equal(t, 0, h.capture.StopCalls())
}

func TestSession_FatalRecognizerError(t *testing.T) {
	for _, code := range []string{recording.CodePermissionDenied, recording.CodeNetwork, "weird"} {
		t.Run(code, func(t *testing.T) {
			h := newHarness(t)
			h.listen()

			h.clock.Advance(2500 * time.Millisecond)
			h.deliver(recording.FinalEvent("partial"))
			h.deliver(recording.ErrorEvent(code))

			res := h.result()
			assert.Equal(t, recording.FatalError, res.State)
			var rerr *recording.RecognizerError
			require.ErrorAs(t, res.Err, &rerr)
			assert.Equal(t, code, rerr.Code)
			assert.Empty(t, res.Transcript)
			h.assertReleased()
		})
	}
}

func TestSession_PermissionDenied(t *testing.T) {
	h := newHarness(t)
	h.mic.Err = fmt.Errorf("os: %w", recording.ErrPermissionDenied)
	require.NoError(t, h.s.Start(context.Background()))

	res := h.result()
	assert.Equal(t, recording.FatalError, res.State)
	assert.ErrorIs(t, res.Err, recording.ErrPermissionDenied)
	assert.Empty(t, h.rec.Languages(), "recognizer must not be opened without a grant")
}

func TestSession_DeviceUnavailable(t *testing.T) {
	h := newHarness(t)
	h.mic.Err = recording.ErrDeviceUnavailable
	require.NoError(t, h.s.Start(context.Background()))

	res := h.result()
	assert.Equal(t, recording.FatalError, res.State)
	assert.ErrorIs(t, res.Err, recording.ErrDeviceUnavailable)
}

func TestSession_OpenFailureReleasesCapture(t *testing.T) {
	h := newHarness(t)
	h.rec.OpenErr = errors.New("no model for language")
	require.NoError(t, h.s.Start(context.Background()))

	res := h.result()
	assert.Equal(t, recording.FatalError, res.State)
	assert.ErrorContains(t, res.Err, "no model for language")
	assert.Equal(t, 1, h.capture.StopCalls())
}

func TestSession_ReopensEndedStream(t *testing.T) {
	first, second := mock.NewStream(), mock.NewStream()
	h := newHarness(t, first, second)
	h.listen()

	h.clock.Advance(2500 * time.Millisecond)
	h.deliver(recording.FinalEvent("hello"))
	first.End()

	require.Eventually(t, func() bool { return len(h.rec.Opened()) == 2 }, waitFor, time.Millisecond)
	h.deliver(recording.InterimEvent("world")) // only accepted once the new stream is wired in
	h.deliver(recording.FinalEvent("world"))
	assert.Equal(t, recording.Listening, h.s.State())

	h.clock.Advance(3 * time.Second)
	res := h.result()
	assert.Equal(t, recording.Scored, res.State)
	assert.Equal(t, "hello world", res.Transcript)
	assert.Len(t, h.rec.Opened(), 2, "exactly one reopen")
	h.assertReleased()
}

func TestSession_ReopenKeepsTimers(t *testing.T) {
	first, second := mock.NewStream(), mock.NewStream()
	h := newHarness(t, first, second)
	h.listen()

	h.clock.Advance(2500 * time.Millisecond)
	h.deliver(recording.FinalEvent("hello"))
	first.End()
	require.Eventually(t, func() bool { return len(h.rec.Opened()) == 2 }, waitFor, time.Millisecond)

	// The silence timer armed before the reopen still fires.
	h.clock.Advance(3 * time.Second)
	res := h.result()
	assert.Equal(t, recording.Scored, res.State)
	assert.Equal(t, "hello", res.Transcript)
	h.assertReleased()
}

func TestSession_ReopenFailureIsFatal(t *testing.T) {
	first := mock.NewStream()
	h := newHarness(t, first)
	h.rec.OpenErr = errors.New("service gone")
	h.rec.OpenErrAfter = 1
	h.listen()

	first.End()
	res := h.result()
	assert.Equal(t, recording.FatalError, res.State)
	assert.ErrorContains(t, res.Err, "service gone")
	assert.Equal(t, 1, h.capture.StopCalls())
}

func TestSession_ManualStop(t *testing.T) {
	t.Run("skips the guard", func(t *testing.T) {
		h := newHarness(t)
		h.listen()

		h.clock.Advance(500 * time.Millisecond)
		h.deliver(recording.FinalEvent("quick"))
		h.s.Stop()

		res := h.result()
		assert.Equal(t, recording.Scored, res.State)
		assert.Equal(t, "quick", res.Transcript)
		h.assertReleased()
	})

	t.Run("nothing said is cancelled", func(t *testing.T) {
		h := newHarness(t)
		h.listen()
		h.deliver(recording.InterimEvent("um"))
		h.s.Stop()

		res := h.result()
		assert.Equal(t, recording.Cancelled, res.State)
		assert.ErrorIs(t, res.Err, recording.ErrEmptyUtterance)
		h.assertReleased()
	})

	t.Run("context cancel stops", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, h.s.Start(ctx))
		require.Eventually(t, func() bool { return h.s.State() == recording.Listening }, waitFor, time.Millisecond)
		h.deliver(recording.FinalEvent("bye"))
		cancel()

		res := h.result()
		assert.Equal(t, recording.Scored, res.State)
		assert.Equal(t, "bye", res.Transcript)
	})
}

func TestSession_LateFinalDuringFinalizing(t *testing.T) {
	stream := mock.NewStream()
	stream.FlushOnStop = []recording.RecognizerEvent{recording.FinalEvent("tail")}
	h := newHarness(t, stream)
	h.listen()

	h.clock.Advance(time.Second)
	h.deliver(recording.FinalEvent("head"))
	h.s.Stop()

	res := h.result()
	assert.Equal(t, recording.Scored, res.State)
	assert.Equal(t, "head tail", res.Transcript)
}

func TestSession_CancelWhileAwaitingPermission(t *testing.T) {
	h := newHarness(t)
	gate := make(chan struct{})
	h.mic.Gate = gate
	require.NoError(t, h.s.Start(context.Background()))
	assert.Equal(t, recording.AwaitingPermission, h.s.State())

	h.s.Stop()
	require.Eventually(t, func() bool {
		ctx := h.mic.LastContext()
		return ctx != nil && ctx.Err() != nil
	}, waitFor, time.Millisecond)
	close(gate) // grant arrives after the stop

	res := h.result()
	assert.Equal(t, recording.Cancelled, res.State)
	assert.ErrorIs(t, res.Err, recording.ErrCancelled)
	h.assertReleased()
}

func TestSession_StartOnlyOnce(t *testing.T) {
	h := newHarness(t)
	h.listen()
	assert.ErrorIs(t, h.s.Start(context.Background()), recording.ErrSessionStarted)

	h.s.Stop()
	h.result()
	assert.ErrorIs(t, h.s.Start(context.Background()), recording.ErrSessionStarted)
}

func TestSession_OnEndedFiresOncePerRegistration(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, recording.Idle, h.s.State())
	h.listen()

	early := make(chan recording.Result, 2)
	h.s.OnEnded(func(r recording.Result) { early <- r })
	h.s.Stop()
	h.result()

	select {
	case <-early:
	case <-time.After(waitFor):
		t.Fatal("early registration did not fire")
	}

	<-h.s.Done()
	var late []recording.Result
	h.s.OnEnded(func(r recording.Result) { late = append(late, r) })
	require.Len(t, late, 1, "late registration fires immediately")
	assert.Equal(t, recording.Cancelled, late[0].State)

	assert.Empty(t, early)
	assert.Empty(t, h.ended)
}

func TestManager_OneActiveSession(t *testing.T) {
	clock := mock.NewClock(t0)
	rec := &mock.Recognizer{}
	mgr := recording.NewManager(&mock.Microphone{}, rec, recording.WithClock(clock))

	first, err := mgr.StartSession(context.Background(), prompt)
	require.NoError(t, err)
	assert.Same(t, first, mgr.Active())

	_, err = mgr.StartSession(context.Background(), prompt)
	assert.ErrorIs(t, err, recording.ErrSessionActive)

	ended := make(chan recording.Result, 1)
	mgr.OnSessionEnded(first, func(r recording.Result) { ended <- r })
	mgr.CancelSession(first)
	select {
	case <-ended:
	case <-time.After(waitFor):
		t.Fatal("session did not end")
	}
	assert.Nil(t, mgr.Active())

	second, err := mgr.StartSession(context.Background(), prompt)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())
	mgr.CancelSession(second)
	mgr.CancelSession(nil)
}

func TestManager_TranscriptUpdates(t *testing.T) {
	clock := mock.NewClock(t0)
	rec := &mock.Recognizer{}
	mgr := recording.NewManager(&mock.Microphone{}, rec, recording.WithClock(clock))

	s, err := mgr.StartSession(context.Background(), prompt)
	require.NoError(t, err)
	t.Cleanup(s.Stop)

	got := make(chan recording.Update, 1)
	mgr.OnTranscriptUpdate(s, func(u recording.Update) { got <- u })
	require.Eventually(t, func() bool { return s.State() == recording.Listening }, waitFor, time.Millisecond)

	require.True(t, rec.Last().Send(recording.InterimEvent("hey")))
	select {
	case u := <-got:
		assert.Equal(t, "hey", u.Text())
	case <-time.After(waitFor):
		t.Fatal("no transcript update")
	}
}

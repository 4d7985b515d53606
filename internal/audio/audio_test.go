package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/echoz/internal/recording"
)

func TestEncodeWAV(t *testing.T) {
	pcm := []byte{1, 0, 2, 0, 3, 0, 4, 0}
	wav := EncodeWAV(pcm, 16000, 1)

	require.Len(t, wav, wavHeaderSize+len(pcm))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]), "PCM format")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]), "channels")
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(32000), binary.LittleEndian.Uint32(wav[28:32]), "byte rate")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[32:34]), "block align")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Equal(t, pcm, wav[44:])
}

func TestPCMDuration(t *testing.T) {
	assert.Equal(t, time.Second, PCMDuration(32000, 16000, 1))
	assert.Equal(t, 500*time.Millisecond, PCMDuration(16000, 16000, 1))
	assert.Equal(t, time.Second, PCMDuration(64000, 16000, 2))
	assert.Zero(t, PCMDuration(100, 0, 1))
}

func TestBus(t *testing.T) {
	b := NewBus()
	a := b.Subscribe(4)
	c := b.Subscribe(1)
	require.Equal(t, 2, b.Len())

	b.Publish([]byte{1})
	b.Publish([]byte{2})

	assert.Equal(t, []byte{1}, <-a.Frames())
	assert.Equal(t, []byte{2}, <-a.Frames())
	assert.Equal(t, []byte{1}, <-c.Frames())
	assert.Equal(t, int64(1), c.Dropped(), "full tap loses frames instead of blocking")
	assert.Zero(t, a.Dropped())

	b.Unsubscribe(a)
	b.Unsubscribe(a)
	_, open := <-a.Frames()
	assert.False(t, open)
	assert.Equal(t, 1, b.Len())

	b.Publish([]byte{3})
	assert.Equal(t, []byte{3}, <-c.Frames())
}

func TestMatchDevice(t *testing.T) {
	names := []string{"Built-in Microphone", "USB Headset Mic", "Monitor of Speakers"}
	assert.Equal(t, 1, matchDevice(names, "headset"))
	assert.Equal(t, 0, matchDevice(names, "BUILT-IN"))
	assert.Equal(t, -1, matchDevice(names, "webcam"))
}

type fakeDevice struct {
	stops int
	err   error
}

func (d *fakeDevice) Stop() error {
	d.stops++
	return d.err
}

// fakeMic returns a Mic whose device is driven by the returned feed func.
func fakeMic(t *testing.T, dev *fakeDevice, openErr error) (*Mic, func([]byte)) {
	t.Helper()
	var feed func([]byte)
	m := NewMic(Config{SampleRate: 16000})
	m.open = func(_ Config, onData func([]byte)) (device, error) {
		if openErr != nil {
			return nil, openErr
		}
		feed = onData
		return dev, nil
	}
	return m, func(b []byte) { feed(b) }
}

func TestMic_CaptureProducesWAVAndFeedsTaps(t *testing.T) {
	dev := &fakeDevice{}
	m, feed := fakeMic(t, dev, nil)
	tap := m.Bus().Subscribe(8)

	h, err := m.RequestCapture(context.Background())
	require.NoError(t, err)

	frame := make([]byte, 320)
	frame[0] = 7
	feed(frame)
	frame[0] = 9 // the device reuses its buffer
	feed(frame)

	got := <-tap.Frames()
	assert.Equal(t, byte(7), got[0])

	art, err := h.Stop()
	require.NoError(t, err)
	assert.Equal(t, "wav", art.Format)
	assert.Equal(t, 16000, art.SampleRate)
	assert.Equal(t, 20*time.Millisecond, art.Duration)
	require.Len(t, art.Data, wavHeaderSize+640)
	assert.Equal(t, byte(7), art.Data[wavHeaderSize])
	assert.Equal(t, byte(9), art.Data[wavHeaderSize+320])

	feed(frame)
	again, err := h.Stop()
	require.NoError(t, err)
	assert.Equal(t, art, again, "frames after stop are ignored and Stop is idempotent")
	assert.Equal(t, 1, dev.stops)
}

func TestMic_OneCaptureAtATime(t *testing.T) {
	m, _ := fakeMic(t, &fakeDevice{}, nil)

	h, err := m.RequestCapture(context.Background())
	require.NoError(t, err)

	_, err = m.RequestCapture(context.Background())
	assert.ErrorIs(t, err, recording.ErrDeviceUnavailable)

	_, err = h.Stop()
	require.NoError(t, err)

	_, err = m.RequestCapture(context.Background())
	assert.NoError(t, err)
}

func TestMic_OpenErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"denied", errors.New("ALSA: Permission denied"), recording.ErrPermissionDenied},
		{"missing", errors.New("no capture device matches \"usb\""), recording.ErrDeviceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := fakeMic(t, nil, tc.err)
			_, err := m.RequestCapture(context.Background())
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.err.Error())
		})
	}
}

func TestMic_CancelledContext(t *testing.T) {
	m, _ := fakeMic(t, &fakeDevice{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.RequestCapture(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCapture_StopError(t *testing.T) {
	m, _ := fakeMic(t, &fakeDevice{err: errors.New("device lost")}, nil)
	h, err := m.RequestCapture(context.Background())
	require.NoError(t, err)

	art, err := h.Stop()
	assert.ErrorIs(t, err, recording.ErrDeviceUnavailable)
	assert.Equal(t, "wav", art.Format)
}

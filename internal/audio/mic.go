// Package audio captures microphone input with miniaudio (malgo). A Mic
// implements recording.Microphone; every capture buffers the session's
// PCM for the WAV artifact and publishes frames on the Mic's Bus, where
// speech recognizers subscribe.
package audio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/abhisek/echoz/internal/recording"
)

// Channels is fixed at mono; recognizers expect it.
const Channels = 1

// Config selects the capture device and rate.
type Config struct {
	// Device is a case-insensitive substring of the device name. Empty
	// selects the system default.
	Device     string
	SampleRate int
}

// device is a started capture device.
type device interface {
	Stop() error
}

type openFunc func(cfg Config, onData func([]byte)) (device, error)

// Mic opens one capture at a time.
type Mic struct {
	cfg  Config
	bus  *Bus
	log  *slog.Logger
	open openFunc

	mu     sync.Mutex
	active *Capture
}

// Option configures a Mic.
type Option func(*Mic)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mic) { m.log = l }
}

// NewMic returns a microphone backed by the system audio stack.
func NewMic(cfg Config, opts ...Option) *Mic {
	m := &Mic{
		cfg:  cfg,
		bus:  NewBus(),
		log:  slog.Default(),
		open: openMalgo,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Bus carries frames of the active capture.
func (m *Mic) Bus() *Bus { return m.bus }

// SampleRate returns the capture rate.
func (m *Mic) SampleRate() int { return m.cfg.SampleRate }

// RequestCapture starts the device. Failures wrap
// recording.ErrPermissionDenied or recording.ErrDeviceUnavailable.
func (m *Mic) RequestCapture(ctx context.Context) (recording.CaptureHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		return nil, fmt.Errorf("%w: capture already in progress", recording.ErrDeviceUnavailable)
	}

	c := &Capture{mic: m, sampleRate: m.cfg.SampleRate}
	dev, err := m.open(m.cfg, c.onData)
	if err != nil {
		return nil, classifyOpenError(err)
	}
	c.dev = dev
	m.active = c
	m.log.Debug("capture started", "device", m.cfg.Device, "sample_rate", m.cfg.SampleRate)
	return c, nil
}

func (m *Mic) release(c *Capture) {
	m.mu.Lock()
	if m.active == c {
		m.active = nil
	}
	m.mu.Unlock()
}

// classifyOpenError maps backend failures onto the recording sentinels.
// Backends report access problems only in their message text.
func classifyOpenError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "denied") || strings.Contains(msg, "permission") || strings.Contains(msg, "not allowed") {
		return fmt.Errorf("%w: %v", recording.ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %v", recording.ErrDeviceUnavailable, err)
}

// Capture is a running capture. It implements recording.CaptureHandle.
type Capture struct {
	mic        *Mic
	dev        device
	sampleRate int

	mu      sync.Mutex
	pcm     []byte
	stopped bool

	stopOnce sync.Once
	artifact recording.AudioArtifact
	stopErr  error
}

func (c *Capture) onData(input []byte) {
	frame := make([]byte, len(input))
	copy(frame, input)

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.pcm = append(c.pcm, frame...)
	c.mu.Unlock()

	c.mic.bus.Publish(frame)
}

// Stop halts the device and returns the captured audio as WAV. Later
// calls return the same result.
func (c *Capture) Stop() (recording.AudioArtifact, error) {
	c.stopOnce.Do(c.stop)
	return c.artifact, c.stopErr
}

func (c *Capture) stop() {
	c.mu.Lock()
	c.stopped = true
	pcm := c.pcm
	c.pcm = nil
	c.mu.Unlock()

	// Outside the lock: the audio thread may be waiting in onData.
	if err := c.dev.Stop(); err != nil {
		c.stopErr = fmt.Errorf("%w: stop capture device: %v", recording.ErrDeviceUnavailable, err)
	}
	c.mic.release(c)

	c.artifact = recording.AudioArtifact{
		Format:     "wav",
		SampleRate: c.sampleRate,
		Data:       EncodeWAV(pcm, c.sampleRate, Channels),
		Duration:   PCMDuration(len(pcm), c.sampleRate, Channels),
	}
}

var _ recording.Microphone = (*Mic)(nil)
var _ recording.CaptureHandle = (*Capture)(nil)

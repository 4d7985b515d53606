package audio

import (
	"sync"
	"sync/atomic"
)

// Tap receives a copy of every captured PCM frame.
type Tap struct {
	ch      chan []byte
	dropped atomic.Int64
}

// Frames returns the frame channel. It is closed by Unsubscribe.
func (t *Tap) Frames() <-chan []byte { return t.ch }

// Dropped counts frames discarded because the reader fell behind.
func (t *Tap) Dropped() int64 { return t.dropped.Load() }

// Bus fans PCM frames out to any number of taps. Publish never blocks: a
// tap whose buffer is full loses the frame.
type Bus struct {
	mu   sync.RWMutex
	taps map[*Tap]struct{}
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{taps: make(map[*Tap]struct{})}
}

// Subscribe registers a tap buffering up to size frames.
func (b *Bus) Subscribe(size int) *Tap {
	t := &Tap{ch: make(chan []byte, size)}
	b.mu.Lock()
	b.taps[t] = struct{}{}
	b.mu.Unlock()
	return t
}

// Unsubscribe removes t and closes its channel. Safe to call twice.
func (b *Bus) Unsubscribe(t *Tap) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.taps[t]; !ok {
		return
	}
	delete(b.taps, t)
	close(t.ch)
}

// Publish delivers frame to every tap. Taps share the slice and must not
// modify it.
func (b *Bus) Publish(frame []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for t := range b.taps {
		select {
		case t.ch <- frame:
		default:
			t.dropped.Add(1)
		}
	}
}

// Len returns the number of subscribed taps.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.taps)
}

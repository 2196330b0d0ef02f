// Package telemetry provides the tracing adapters around request dispatch.
package telemetry

import (
	"sync"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultMaxEventBytes bounds the text carried by one span event.
	DefaultMaxEventBytes = 4096
	// DefaultMaxEventDelay bounds how long written text waits before it becomes an event.
	DefaultMaxEventDelay = 50 * time.Millisecond
)

// ErrSpanEnded is returned for writes to a span that has already ended.
var ErrSpanEnded = zerr.New("span has ended")

// EventBatcher coalesces text written to a span into events.
// A batch is emitted once it reaches maxBytes, maxDelay after its first write, or on Close.
// No goroutine runs while nothing is buffered.
type EventBatcher struct {
	maxBytes int
	maxDelay time.Duration
	emit     func(string)

	mu      sync.Mutex
	pending []byte
	timer   *time.Timer
	closed  bool
}

// NewEventBatcher returns an EventBatcher that passes each batch to emit.
// Non-positive limits select the defaults.
func NewEventBatcher(maxBytes int, maxDelay time.Duration, emit func(string)) *EventBatcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxEventBytes
	}
	if maxDelay <= 0 {
		maxDelay = DefaultMaxEventDelay
	}
	return &EventBatcher{maxBytes: maxBytes, maxDelay: maxDelay, emit: emit}
}

// Write buffers p.
func (b *EventBatcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrSpanEnded
	}

	b.pending = append(b.pending, p...)
	switch {
	case len(b.pending) >= b.maxBytes:
		b.flushLocked()
	case b.timer == nil:
		b.timer = time.AfterFunc(b.maxDelay, b.Flush)
	}
	return len(p), nil
}

// Flush emits whatever is buffered.
func (b *EventBatcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushLocked()
}

// Close emits the last batch. Later writes fail with ErrSpanEnded.
func (b *EventBatcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.flushLocked()
	return nil
}

// flushLocked must be called with mu held. emit runs under the lock so batches stay ordered.
func (b *EventBatcher) flushLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if len(b.pending) == 0 {
		return
	}

	msg := string(b.pending)
	b.pending = b.pending[:0]
	if b.emit != nil {
		b.emit(msg)
	}
}

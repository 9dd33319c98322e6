package trace

import (
	"io"
	"sync"
)

const defaultRingSize = 4096

// RingTracer keeps the last events in memory. With a next tracer set it
// forwards every admitted event as well.
type RingTracer struct {
	mu     sync.Mutex
	events []Event
	head   int
	full   bool
	level  Level
	next   Tracer
}

// NewRingTracer keeps up to capacity events; a non-positive capacity means
// the default.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.admits(ev.Scope) {
		return
	}
	t.mu.Lock()
	t.events[t.head] = *ev
	t.head++
	if t.head == len(t.events) {
		t.head, t.full = 0, true
	}
	t.mu.Unlock()
	if t.next != nil {
		t.next.Emit(ev)
	}
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.full {
		return append([]Event(nil), t.events[:t.head]...)
	}
	out := make([]Event, 0, len(t.events))
	out = append(out, t.events[t.head:]...)
	return append(out, t.events[:t.head]...)
}

// Dump writes the stored events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

// Streams reports whether events are also written as they happen.
func (t *RingTracer) Streams() bool { return t.next != nil }

func (t *RingTracer) Flush() error {
	if t.next != nil {
		return t.next.Flush()
	}
	return nil
}

func (t *RingTracer) Close() error {
	if t.next != nil {
		return t.next.Close()
	}
	return nil
}

func (t *RingTracer) Level() Level { return t.level }

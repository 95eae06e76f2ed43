package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory. At LevelError it keeps
// every event and remembers whether any of them failed.
type RingTracer struct {
	mu     sync.RWMutex
	events []Event
	head   int  // next write position
	full   bool // has wrapped around
	failed bool
	level  Level
}

func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if t.level != LevelError && !t.level.Admits(ev) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	stored := *ev
	stored.Seq = NextSeq()
	t.events[t.head] = stored
	t.head = (t.head + 1) % len(t.events)
	t.full = t.full || t.head == 0
	t.failed = t.failed || ev.Failed
}

// Failed reports whether a failed event was ever recorded, even one that
// has since been overwritten.
func (t *RingTracer) Failed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.failed
}

// ShouldDump reports whether the buffer is worth writing out on exit.
func (t *RingTracer) ShouldDump() bool {
	return t.level != LevelError || t.Failed()
}

// Snapshot returns the stored events oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.full {
		return append([]Event(nil), t.events[:t.head]...)
	}
	out := make([]Event, 0, len(t.events))
	out = append(out, t.events[t.head:]...)
	return append(out, t.events[:t.head]...)
}

// Dump writes the snapshot to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error   { return nil }
func (t *RingTracer) Close() error   { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }

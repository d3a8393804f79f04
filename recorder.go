package chromez

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/petermattis/goid"
	"github.com/zoobzio/clockz"
)

// DefaultOutput is the trace path used when BeginSession is given an
// empty one.
const DefaultOutput = "trace.json"

// Recorder accumulates trace events during a session and writes them to a
// file when the session ends. Safe for concurrent use by multiple
// goroutines; one recorder per process is the expected wiring.
//
//nolint:govet // Field order optimized for readability over memory
type Recorder struct {
	clock  clockz.Clock
	mu     sync.Mutex
	events []Event
	start  time.Time
	path   string
	active bool
}

// New creates a recorder.
// Uses the real clock for production behavior.
func New() *Recorder {
	return &Recorder{clock: clockz.RealClock}
}

// NewWithClock creates a recorder with the specified clock.
// Enables clock injection for deterministic testing.
func NewWithClock(clock clockz.Clock) *Recorder {
	return &Recorder{clock: clock}
}

// BeginSession starts a fresh session writing to path, or DefaultOutput
// when path is empty. The clock reading taken here becomes the session's
// zero point. Events buffered by a previous session are discarded,
// whether or not that session was ever flushed.
func (r *Recorder) BeginSession(path string) {
	if path == "" {
		path = DefaultOutput
	}
	start := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = r.events[:0]
	r.start = start
	r.path = path
	r.active = true
}

// EndSession stops the session and writes the buffered events to the
// session's output path. No-op when no session is active, so a second
// consecutive call performs no write and cannot clobber the file.
//
// A failed write is reported to the caller; the buffer is kept until the
// next BeginSession so nothing is lost silently.
func (r *Recorder) EndSession() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return nil
	}
	r.active = false
	return r.flushLocked()
}

// Close ends the current session, if any. It exists so a recorder can be
// tied to program teardown with defer, reproducing the write-on-exit
// behavior short-lived instrumented programs rely on.
func (r *Recorder) Close() error {
	return r.EndSession()
}

// AddDurationEvent records a complete event spanning start to end. Both
// instants should come from Now. The subtraction operands are captured
// before the mutex is taken, so waiting for the buffer can never inflate
// the measured duration. Silently dropped when no session is active.
func (r *Recorder) AddDurationEvent(name string, category Category, start, end time.Time) {
	tid := goid.Get()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return
	}
	dur := micros(end.Sub(start))
	r.appendLocked(Event{
		Name:      name,
		Category:  category,
		Phase:     PhaseComplete,
		Timestamp: micros(start.Sub(r.start)),
		Tid:       tid,
		Duration:  &dur,
	})
}

// AddBeginEvent records a begin event for manual pairing with a later
// AddEndEvent. Pairing is not validated: mismatched, nested, or orphaned
// pairs are written verbatim and left to the viewer.
func (r *Recorder) AddBeginEvent(name string, category Category) {
	r.addPhaseEvent(name, category, PhaseBegin)
}

// AddEndEvent records an end event closing an earlier AddBeginEvent.
func (r *Recorder) AddEndEvent(name string, category Category) {
	r.addPhaseEvent(name, category, PhaseEnd)
}

// AddInstantEvent records a zero-width instant event.
func (r *Recorder) AddInstantEvent(name string, category Category) {
	r.addPhaseEvent(name, category, PhaseInstant)
}

// Now returns the recorder's clock reading. Lock-free, so scopes can
// capture endpoints without touching the buffer.
func (r *Recorder) Now() time.Time {
	return r.clock.Now()
}

// Count returns the number of events buffered in the current session.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Active reports whether a session is running.
func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// addPhaseEvent appends a duration-less event. The timestamp is captured
// before the mutex, same discipline as AddDurationEvent.
func (r *Recorder) addPhaseEvent(name string, category Category, phase Phase) {
	now := r.clock.Now()
	tid := goid.Get()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return
	}
	r.appendLocked(Event{
		Name:      name,
		Category:  category,
		Phase:     phase,
		Timestamp: micros(now.Sub(r.start)),
		Tid:       tid,
	})
}

// appendLocked adds an event to the buffer, growing ahead of append's
// default policy. Must be called with the mutex held.
func (r *Recorder) appendLocked(ev Event) {
	if len(r.events) >= cap(r.events) {
		currentCap := cap(r.events)
		var newCap int
		if currentCap < 1024 {
			// Double capacity for small buffers.
			newCap = currentCap * 2
		} else {
			// Grow by 50% for large buffers to avoid excessive memory usage.
			newCap = currentCap + currentCap/2
		}
		if newCap < 32 {
			newCap = 32
		}
		grown := make([]Event, len(r.events), newCap)
		copy(grown, r.events)
		r.events = grown
	}
	r.events = append(r.events, ev)
}

// flushLocked serializes the buffer to the session's path. Must be called
// with the mutex held and the session already inactive, so no concurrent
// append can land mid-write.
func (r *Recorder) flushLocked() error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("chromez: create %s: %w", r.path, err)
	}
	werr := encodeTrace(f, r.events)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("chromez: write %s: %w", r.path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("chromez: close %s: %w", r.path, cerr)
	}
	return nil
}

// micros converts a duration to fractional microseconds.
func micros(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e3
}

package chromez

import "time"

// Tracer is the operation contract shared by Recorder and NopTracer.
// Instrumented call sites that hold a Tracer instead of a concrete
// *Recorder can be wired to NopTracer when tracing is disabled, paying
// near-zero overhead without touching the call sites themselves.
type Tracer interface {
	BeginSession(path string)
	EndSession() error
	Close() error
	AddDurationEvent(name string, category Category, start, end time.Time)
	AddBeginEvent(name string, category Category)
	AddEndEvent(name string, category Category)
	AddInstantEvent(name string, category Category)
	Now() time.Time
	StartScope(name string) *Scope
	StartScopeCategory(name string, category Category) *Scope
}

var (
	_ Tracer = (*Recorder)(nil)
	_ Tracer = NopTracer{}
)

// NopTracer discards everything and never writes a file. Now still
// returns a real clock reading so caller-side timing arithmetic stays
// valid, and the scopes it hands out are inert nil values whose End is
// safe to call.
type NopTracer struct{}

func (NopTracer) BeginSession(string) {}

func (NopTracer) EndSession() error { return nil }

func (NopTracer) Close() error { return nil }

func (NopTracer) AddDurationEvent(string, Category, time.Time, time.Time) {}

func (NopTracer) AddBeginEvent(string, Category) {}

func (NopTracer) AddEndEvent(string, Category) {}

func (NopTracer) AddInstantEvent(string, Category) {}

func (NopTracer) Now() time.Time { return time.Now() }

func (NopTracer) StartScope(string) *Scope { return nil }

func (NopTracer) StartScopeCategory(string, Category) *Scope { return nil }

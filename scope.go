package chromez

import "time"

// DefaultCategory is assigned to scopes created without an explicit one.
const DefaultCategory Category = "function"

// Scope emits a complete event bracketing its own lifetime. Create one at
// the top of a region of work and End it on the way out:
//
//	defer rec.StartScope("LoadAssets").End()
//
// The deferred End runs on every exit path, early returns and panic
// unwinding included. A Scope belongs to the goroutine that created it;
// do not share or copy it.
type Scope struct {
	rec      *Recorder
	name     string
	category Category
	start    time.Time
	ended    bool
}

// StartScope begins a scope named name in the default category.
func (r *Recorder) StartScope(name string) *Scope {
	return r.StartScopeCategory(name, DefaultCategory)
}

// StartScopeCategory begins a scope with an explicit category.
func (r *Recorder) StartScopeCategory(name string, category Category) *Scope {
	return &Scope{
		rec:      r,
		name:     name,
		category: category,
		start:    r.Now(),
	}
}

// End emits the scope's complete event. Safe to call more than once -
// only the first call records. End never fails or panics: with no active
// session the underlying append is a silent no-op, and a nil receiver
// (as handed out by NopTracer) is inert.
func (s *Scope) End() {
	if s == nil || s.ended {
		return
	}
	s.ended = true
	s.rec.AddDurationEvent(s.name, s.category, s.start, s.rec.Now())
}

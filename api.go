// Package chromez records Chrome Trace Event Format timelines.
//
// chromez buffers timestamped events in memory during a session and writes
// them as a single JSON document when the session ends. The output loads
// directly in chrome://tracing or https://ui.perfetto.dev.
//
// Core Components:.
//   - Recorder: session lifecycle, thread-safe event buffering, file export.
//   - Scope: emits a complete duration event bracketing its own lifetime.
//   - Event: one captured observation (name, category, phase, timing).
//   - NopTracer: drop-in no-op implementation for disabled tracing.
//
// Basic Usage:.
//
//	rec := chromez.New()
//	rec.BeginSession("trace.json")
//	defer rec.Close()
//
//	func loadLevel(rec *chromez.Recorder) {
//		defer rec.StartScope("loadLevel").End()
//		// ... work ...
//	}
//
// Thread Safety:.
//
// Recorder is safe for concurrent use by multiple goroutines. Every append
// goes through a single mutex; clock reads happen before the mutex is
// taken so contention never inflates a measurement.
//
// A Scope is NOT thread-safe - it belongs to the goroutine that created it
// and brackets one lexical region of work.
//
// Session Lifecycle:.
//
// Events appended while no session is active are silently dropped. Append
// calls are infallible by contract; only BeginSession/EndSession surface
// anything to the caller. Starting a new session discards whatever the
// previous one buffered, flushed or not.
//
// Memory Management:.
//
// The event buffer is unbounded for the lifetime of a session. Densely
// instrumented long-running programs should cut sessions periodically
// rather than expect the recorder to shed load.
package chromez

// Category is a free-form grouping label attached to events.
type Category = string

package chromez

// Phase is the single-character tag telling a viewer how to render an
// event. The Trace Event Format defines many more phases; the recorder
// only emits these four.
type Phase string

const (
	PhaseBegin    Phase = "B"
	PhaseEnd      Phase = "E"
	PhaseComplete Phase = "X"
	PhaseInstant  Phase = "I"
)

// Event is one captured observation. Events are immutable once appended
// and keep their append order, which may lag timestamp order when
// goroutines race for the buffer.
//
// Field order fixes the JSON key order timeline viewers expect.
//
//nolint:govet // Field order matches the serialized key order, not alignment
type Event struct {
	Name      string   `json:"name"`
	Category  Category `json:"cat"`
	Phase     Phase    `json:"ph"`
	Timestamp float64  `json:"ts"`            // microseconds since session start
	Pid       int      `json:"pid"`           // always 0; cross-process correlation is out of scope
	Tid       int64    `json:"tid"`           // id of the capturing goroutine
	Duration  *float64 `json:"dur,omitempty"` // microseconds; complete events only
}

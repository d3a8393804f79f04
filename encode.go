package chromez

import (
	"encoding/json"
	"io"
)

// traceFile is the document wrapper timeline viewers expect: a single
// object holding the traceEvents array.
type traceFile struct {
	TraceEvents []Event `json:"traceEvents"`
}

// encodeTrace writes events as one compact JSON document. Pure with
// respect to the recorder: no clock, no locking, just the buffer it is
// handed.
func encodeTrace(w io.Writer, events []Event) error {
	if events == nil {
		// An empty session still produces a loadable document.
		events = []Event{}
	}
	buf, err := json.Marshal(traceFile{TraceEvents: events})
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

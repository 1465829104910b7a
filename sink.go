package tinylog

import (
	"io"
	"sync"
)

// sink serialises writes to the destination so a record or a dump body is
// never interleaved with another goroutine's output.
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func newSink(w io.Writer) *sink {
	if w == nil {
		w = io.Discard
	}
	return &sink{w: w}
}

// write issues exactly one Write call. Errors are dropped; wrap the
// destination in an ObservedWriter to see them.
func (s *sink) write(p []byte) {
	s.mu.Lock()
	_, _ = s.w.Write(p)
	s.mu.Unlock()
}

package tinylog

import (
	"io"
	"sync"
)

// WriteFailure describes one record or dump body that did not fully reach
// the destination.
type WriteFailure struct {
	// Seq is the 1-based number of the failed write.
	Seq       uint64
	Err       error
	Written   int
	Attempted int
}

// Lost returns the number of bytes of the write that were dropped.
func (f WriteFailure) Lost() int {
	return f.Attempted - f.Written
}

// ObservedWriterStats is a snapshot of the counters kept by ObservedWriter.
// A Logger issues one write per record and one per dump body, so Writes
// counts those.
type ObservedWriterStats struct {
	Writes      uint64
	Bytes       uint64
	Failures    uint64
	ShortWrites uint64
	LostBytes   uint64
}

// ObservedWriter sits between a Logger and its destination and accounts for
// every write. Logger drops write errors so that logging never fails the
// caller; the counters and the failure callback make lost output visible.
//
//	out := tinylog.NewObservedWriter(os.Stdout, nil)
//	logger := tinylog.New(out)
//	...
//	if out.Stats().Failures > 0 { ... }
type ObservedWriter struct {
	dst       io.Writer
	onFailure func(WriteFailure)

	mu    sync.Mutex
	stats ObservedWriterStats
}

// NewObservedWriter wraps dst, which defaults to io.Discard. onFailure, when
// non-nil, is called synchronously for every failed write, after the
// counters have been updated.
func NewObservedWriter(dst io.Writer, onFailure func(WriteFailure)) *ObservedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &ObservedWriter{dst: dst, onFailure: onFailure}
}

func (w *ObservedWriter) Write(p []byte) (int, error) {
	if w == nil || w.dst == nil {
		return len(p), nil
	}
	n, err := w.dst.Write(p)
	short := n < len(p)
	if short && err == nil {
		err = io.ErrShortWrite
	}

	w.mu.Lock()
	w.stats.Writes++
	w.stats.Bytes += uint64(max(n, 0))
	seq := w.stats.Writes
	if short {
		w.stats.ShortWrites++
	}
	if err != nil {
		w.stats.Failures++
		w.stats.LostBytes += uint64(len(p) - min(max(n, 0), len(p)))
	}
	w.mu.Unlock()

	if err != nil && w.onFailure != nil {
		w.onFailure(WriteFailure{Seq: seq, Err: err, Written: n, Attempted: len(p)})
	}
	return n, err
}

// Stats returns a consistent snapshot of the counters.
func (w *ObservedWriter) Stats() ObservedWriterStats {
	if w == nil {
		return ObservedWriterStats{}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

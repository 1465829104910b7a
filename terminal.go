package tinylog

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is backed by a terminal file descriptor.
// Writers without a descriptor, such as buffers, are never terminals.
func isTerminal(w io.Writer) bool {
	if o, ok := w.(*ObservedWriter); ok && o != nil {
		w = o.dst
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

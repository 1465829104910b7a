package tinylog

import (
	"strconv"
	"sync"
	"time"
)

// RecordCapacity is the largest rendered record, in bytes, that a Logger
// writes. Anything beyond it is dropped without error.
const RecordCapacity = 1024

// record is a fixed-capacity render buffer. It never grows: writes past
// capacity are cut at the boundary and flagged as truncated.
type record struct {
	buf       [RecordCapacity]byte
	n         int
	truncated bool
}

var recordPool = sync.Pool{
	New: func() any {
		return new(record)
	},
}

func acquireRecord() *record {
	r := recordPool.Get().(*record)
	r.n = 0
	r.truncated = false
	return r
}

func releaseRecord(r *record) {
	recordPool.Put(r)
}

// Write implements io.Writer so fmt.Fprintf can render into the record. It
// always reports len(p) so formatting carries on after truncation.
func (r *record) Write(p []byte) (int, error) {
	r.writeBytes(p)
	return len(p), nil
}

func (r *record) writeBytes(p []byte) {
	free := len(r.buf) - r.n
	if len(p) > free {
		p = p[:free]
		r.truncated = true
	}
	r.n += copy(r.buf[r.n:], p)
}

func (r *record) writeString(s string) {
	free := len(r.buf) - r.n
	if len(s) > free {
		s = s[:free]
		r.truncated = true
	}
	r.n += copy(r.buf[r.n:], s)
}

func (r *record) writeByte(b byte) {
	if r.n == len(r.buf) {
		r.truncated = true
		return
	}
	r.buf[r.n] = b
	r.n++
}

func (r *record) writeInt(v int) {
	var scratch [20]byte
	r.writeBytes(strconv.AppendInt(scratch[:0], int64(v), 10))
}

func (r *record) writeTimestamp(t time.Time) {
	var scratch [timestampLen]byte
	r.writeBytes(appendTimestamp(scratch[:0], t))
}

func (r *record) bytes() []byte {
	return r.buf[:r.n]
}

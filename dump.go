package tinylog

import (
	"slices"
	"sync"
)

const (
	dumpMessage    = "Pretty print buffer data"
	dumpRowWidth   = 16
	dumpTextColumn = 51
	dumpDefaultCap = 1024
	dumpMaxCap     = 64 << 10
	hexDigits      = "0123456789abcdef"
)

var dumpBufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, dumpDefaultCap)
		return &b
	},
}

// Dump writes a hex and ASCII rendering of buf, 16 bytes per row, preceded
// by a "Pretty print buffer data" record at level. Nothing is written when
// level is disabled.
//
// The text column of a full row is flushed while processing the first byte
// of the next row, so it appears after that byte's hex value. The last row is
// padded so its text starts 51 columns from the start of the hex field.
func (l *Logger) Dump(level Level, buf []byte) {
	l.dump(level, buf)
}

func (l *Logger) dump(level Level, buf []byte) {
	if !l.levels.enabled(level) {
		return
	}
	file, line, function := callerInfo(3)
	// Log gates on level again on its own.
	l.Log(level, dumpMessage, file, line, function)

	bp := dumpBufferPool.Get().(*[]byte)
	out := appendDump((*bp)[:0], buf)
	l.out.write(out)
	if cap(out) > dumpMaxCap {
		out = make([]byte, 0, dumpDefaultCap)
	}
	*bp = out[:0]
	dumpBufferPool.Put(bp)
}

func appendDump(dst, buf []byte) []byte {
	rows := len(buf)/dumpRowWidth + 1
	dst = slices.Grow(dst, len(buf)*3+rows*(dumpRowWidth+4)+dumpTextColumn+2)

	var text [dumpRowWidth]byte
	for i, b := range buf {
		dst = append(dst, hexDigits[b>>4], hexDigits[b&0x0f], ' ')
		if i != 0 && i%dumpRowWidth == 0 {
			dst = append(dst, "   "...)
			dst = append(dst, text[:]...)
			dst = append(dst, '\n')
		}
		text[i%dumpRowWidth] = printableByte(b)
	}

	rem := len(buf) % dumpRowWidth
	if rem == 0 && len(buf) > 0 {
		rem = dumpRowWidth
	}
	for range dumpTextColumn - rem*3 {
		dst = append(dst, ' ')
	}
	dst = append(dst, text[:rem]...)
	return append(dst, '\n', '\n')
}

func printableByte(b byte) byte {
	if b < ' ' || b > '~' {
		return '.'
	}
	return b
}

package tinylog

import "time"

// noTime replaces the whole timestamp field when the clock value cannot be
// rendered in the fixed-width layout.
const noTime = "NO_TIME"

// timestampLen is len("20060102 15:04:05.000000 -0700").
const timestampLen = 30

// appendTimestamp renders t as YYYYMMDD HH:MM:SS.NNNNNN ±ZZZZ. It is the
// allocation-free equivalent of t.Format("20060102 15:04:05.000000 -0700").
func appendTimestamp(buf []byte, t time.Time) []byte {
	year, month, day := t.Date()
	if year < 0 || year > 9999 {
		return append(buf, noTime...)
	}
	_, offset := t.Zone()
	if offset < -(18*3600) || offset > 18*3600 {
		return append(buf, noTime...)
	}
	hour, min, sec := t.Clock()
	buf = appendFourDigits(buf, year)
	buf = appendTwoDigits(buf, int(month))
	buf = appendTwoDigits(buf, day)
	buf = append(buf, ' ')
	buf = appendTwoDigits(buf, hour)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, min)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, sec)
	buf = append(buf, '.')
	buf = appendMicros(buf, t.Nanosecond()/1000)
	buf = append(buf, ' ')
	if offset < 0 {
		buf = append(buf, '-')
		offset = -offset
	} else {
		buf = append(buf, '+')
	}
	buf = appendTwoDigits(buf, offset/3600)
	buf = appendTwoDigits(buf, (offset%3600)/60)
	return buf
}

func appendMicros(buf []byte, usec int) []byte {
	var digits [6]byte
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + usec%10)
		usec /= 10
	}
	return append(buf, digits[:]...)
}

func appendFourDigits(buf []byte, v int) []byte {
	buf = appendTwoDigits(buf, v/100)
	buf = appendTwoDigits(buf, v%100)
	return buf
}

func appendTwoDigits(buf []byte, value int) []byte {
	buf = append(buf, byte('0'+value/10))
	buf = append(buf, byte('0'+value%10))
	return buf
}

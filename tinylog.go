package tinylog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"pkt.systems/tinylog/ansi"
)

const unknownLevelMessage = "Unknown log level used"

// ColorMode controls whether the level label is wrapped in ANSI colour.
type ColorMode int

const (
	// ColorNever emits plain labels. This is the default.
	ColorNever ColorMode = iota
	// ColorAuto colours labels when the destination is a terminal.
	ColorAuto
	// ColorAlways colours labels regardless of the destination.
	ColorAlways
)

// ParseColorMode converts "never", "auto" or "always" (case insensitive,
// with on/off style synonyms) into a ColorMode.
func ParseColorMode(value string) (ColorMode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "never", "off", "false", "no", "0":
		return ColorNever, true
	case "auto":
		return ColorAuto, true
	case "always", "on", "true", "yes", "force", "1":
		return ColorAlways, true
	default:
		return ColorNever, false
	}
}

// Options controls how a Logger filters and renders records.
type Options struct {
	// Levels seeds the enabled-set. When zero, DefaultLevels() is used
	// unless NoDefaultLevels is set.
	Levels Level

	// NoDefaultLevels takes Levels literally, so a zero Levels starts the
	// Logger with every level disabled.
	NoDefaultLevels bool

	// Color selects label colouring. Defaults to ColorNever.
	Color ColorMode

	// Palette overrides the label colours. When nil the package-level
	// colours in the ansi package are used.
	Palette *ansi.Palette

	// Now overrides the clock used for record timestamps.
	Now func() time.Time
}

// Logger renders leveled records and buffer dumps to a single destination.
// All methods are safe for concurrent use.
type Logger struct {
	levels  *levelSet
	out     *sink
	now     func() time.Time
	color   bool
	palette *ansi.Palette
}

// New returns a Logger writing to w with the default levels and no colour.
func New(w io.Writer) *Logger {
	return NewWithOptions(w, Options{})
}

// NewWithOptions returns a Logger writing to w configured by opts.
func NewWithOptions(w io.Writer, opts Options) *Logger {
	levels := opts.Levels
	if levels == 0 && !opts.NoDefaultLevels {
		levels = defaultLevels
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	color := false
	switch opts.Color {
	case ColorAlways:
		color = true
	case ColorAuto:
		color = isTerminal(w)
	}
	return &Logger{
		levels:  newLevelSet(levels),
		out:     newSink(w),
		now:     now,
		color:   color,
		palette: opts.Palette,
	}
}

// SetLevel enables every level in level. Setting an enabled level is a no-op.
func (l *Logger) SetLevel(level Level) {
	l.levels.set(level)
}

// UnsetLevel disables level, but only when all of its bits are currently
// enabled. Otherwise the enabled-set is left untouched.
func (l *Logger) UnsetLevel(level Level) {
	l.levels.unset(level)
}

// IsLevel reports whether every bit in level is enabled. A mask of several
// levels is only reported enabled when all of them are.
func (l *Logger) IsLevel(level Level) bool {
	return l.levels.enabled(level)
}

// Levels returns the current enabled-set.
func (l *Logger) Levels() Level {
	return l.levels.load()
}

// Log renders one record with explicit call-site metadata:
//
//	[LBL] YYYYMMDD HH:MM:SS.NNNNNN ±ZZZZ - file:function(line)
//	<msg formatted with args>
//	<blank line>
//
// Nothing is done when level is disabled. A level that is not one of the five
// named levels is reported with an ErrorLevel record and rendered as ERR.
// Records longer than RecordCapacity are truncated.
func (l *Logger) Log(level Level, msg string, file string, line int, function string, args ...any) {
	if !l.levels.enabled(level) {
		return
	}
	label, ok := level.label()
	if !ok {
		l.Log(ErrorLevel, unknownLevelMessage, file, line, function)
		level, label = ErrorLevel, errorLabel
	}

	r := acquireRecord()
	r.writeByte('[')
	if l.color {
		r.writeString(l.labelColor(level))
		r.writeString(label)
		r.writeString(ansi.Reset)
	} else {
		r.writeString(label)
	}
	r.writeString("] ")
	r.writeTimestamp(l.now())
	r.writeString(" - ")
	r.writeString(file)
	r.writeByte(':')
	r.writeString(function)
	r.writeByte('(')
	r.writeInt(line)
	r.writeString(")\n")
	fmt.Fprintf(r, msg, args...)
	r.writeString("\n\n")
	l.out.write(r.bytes())
	releaseRecord(r)
}

// Logf logs at level using the caller's file, line and function.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.logCaller(level, format, args)
}

// Infof logs at InfoLevel using the caller's file, line and function.
func (l *Logger) Infof(format string, args ...any) {
	l.logCaller(InfoLevel, format, args)
}

// Errorf logs at ErrorLevel using the caller's file, line and function.
func (l *Logger) Errorf(format string, args ...any) {
	l.logCaller(ErrorLevel, format, args)
}

// Warnf logs at WarningLevel using the caller's file, line and function.
func (l *Logger) Warnf(format string, args ...any) {
	l.logCaller(WarningLevel, format, args)
}

// Tracef logs at TraceLevel using the caller's file, line and function.
func (l *Logger) Tracef(format string, args ...any) {
	l.logCaller(TraceLevel, format, args)
}

// Debugf logs at DebugLevel using the caller's file, line and function.
func (l *Logger) Debugf(format string, args ...any) {
	l.logCaller(DebugLevel, format, args)
}

// logCaller must be called directly from an exported entry point so the
// frame three levels up is the user's call site.
func (l *Logger) logCaller(level Level, format string, args []any) {
	if !l.levels.enabled(level) {
		return
	}
	file, line, function := callerInfo(3)
	l.Log(level, format, file, line, function, args...)
}

func (l *Logger) labelColor(level Level) string {
	var p ansi.Palette
	if l.palette != nil {
		p = *l.palette
	} else {
		p = ansi.Snapshot()
	}
	switch level {
	case InfoLevel:
		return p.Info
	case WarningLevel:
		return p.Warning
	case TraceLevel:
		return p.Trace
	case DebugLevel:
		return p.Debug
	default:
		return p.Error
	}
}

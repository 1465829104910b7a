package tinylog

import (
	"sync"
	"sync/atomic"
)

var (
	defaultOnce   sync.Once
	defaultLogger atomic.Pointer[Logger]
)

// Init configures the default logger from the environment (see FromEnv),
// writing to os.Stdout. Only the first call has an effect. Calling it is
// optional: the package-level functions call it on first use, but doing so
// early in main makes the TINYLOG_LEVEL diagnostics appear at startup.
func Init() {
	defaultOnce.Do(func() {
		defaultLogger.Store(FromEnv())
	})
}

// Default returns the logger behind the package-level functions.
func Default() *Logger {
	Init()
	return defaultLogger.Load()
}

// SetDefault replaces the logger behind the package-level functions. A nil
// logger is ignored. When called before Init, the environment bootstrap is
// skipped and later Init calls have no effect.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultOnce.Do(func() {})
	defaultLogger.Store(l)
}

// SetLevel enables level on the default logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// UnsetLevel disables level on the default logger when all of its bits are
// enabled.
func UnsetLevel(level Level) {
	Default().UnsetLevel(level)
}

// IsLevel reports whether every bit of level is enabled on the default
// logger.
func IsLevel(level Level) bool {
	return Default().IsLevel(level)
}

// Log renders a record on the default logger with explicit call-site
// metadata.
func Log(level Level, msg string, file string, line int, function string, args ...any) {
	Default().Log(level, msg, file, line, function, args...)
}

// Dump writes a hex and ASCII rendering of buf on the default logger.
func Dump(level Level, buf []byte) {
	Default().dump(level, buf)
}

// Logf logs at level on the default logger using the caller's location.
func Logf(level Level, format string, args ...any) {
	Default().logCaller(level, format, args)
}

// Infof logs at InfoLevel on the default logger.
func Infof(format string, args ...any) {
	Default().logCaller(InfoLevel, format, args)
}

// Errorf logs at ErrorLevel on the default logger.
func Errorf(format string, args ...any) {
	Default().logCaller(ErrorLevel, format, args)
}

// Warnf logs at WarningLevel on the default logger.
func Warnf(format string, args ...any) {
	Default().logCaller(WarningLevel, format, args)
}

// Tracef logs at TraceLevel on the default logger.
func Tracef(format string, args ...any) {
	Default().logCaller(TraceLevel, format, args)
}

// Debugf logs at DebugLevel on the default logger.
func Debugf(format string, args ...any) {
	Default().logCaller(DebugLevel, format, args)
}

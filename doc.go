// Package tinylog is a small leveled logger with bitmask filtering and a hex
// dump helper. Records are plain text written to standard output by default:
//
//	[INF] 20250102 15:04:05.123456 +0100 - main.go:main(12)
//	hello world
//
// # Design overview
//
//   - Levels are single bits (InfoLevel, ErrorLevel, WarningLevel, TraceLevel,
//     DebugLevel). The enabled-set is a mask; IsLevel uses AND semantics, so
//     a combined mask is enabled only when every bit in it is.
//   - The disabled path is one atomic load. No buffer is acquired and the
//     caller's location is not resolved.
//   - Records render into a pooled buffer of RecordCapacity bytes. Longer
//     records are truncated rather than grown, and each record reaches the
//     destination in a single Write.
//   - Timestamps are formatted without time.Format; a clock value that does
//     not fit the fixed layout renders as NO_TIME.
//
// # Usage
//
// Package-level functions use a default logger configured from the
// environment on first use:
//
//	tinylog.Init()
//	tinylog.Infof("listening on %s", addr)
//	tinylog.Dump(tinylog.DebugLevel, packet)
//
// Log takes explicit call-site metadata for callers that already have it:
//
//	tinylog.Log(tinylog.WarningLevel, "retry %d", "conn.go", 88, "dial", n)
//
// Independent loggers write wherever needed:
//
//	logger := tinylog.NewWithOptions(os.Stderr, tinylog.Options{
//		Levels: tinylog.AllLevels,
//		Color:  tinylog.ColorAuto,
//	})
//
// # Environment
//
// TINYLOG_LEVEL holds space separated level codes applied left to right to
// the default levels; a leading ! disables a level:
//
//	TINYLOG_LEVEL="TRC !DBG" ./app
//
// TINYLOG_COLOR (never, auto, always) and TINYLOG_PALETTE select label
// colouring; NO_COLOR disables it. See FromEnv.
//
// The tinydump command under cmd/ dumps files through this package.
package tinylog

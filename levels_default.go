//go:build !tinylog_release

package tinylog

const defaultLevels = InfoLevel | ErrorLevel | WarningLevel | DebugLevel

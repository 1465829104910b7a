package tinylog

import (
	"path/filepath"
	"runtime"
	"strings"
)

const unknownFunction = "unknown"

// CurrentFn returns the name of the calling function without package path or
// receiver. If the caller cannot be determined it returns "unknown". It is
// useful when building the function argument of Logger.Log by hand.
//
//	tinylog.Log(tinylog.InfoLevel, "ready", "main.go", 42, tinylog.CurrentFn())
func CurrentFn() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return unknownFunction
	}
	return functionNameForPC(pc)
}

// callerInfo returns the file base name, line and short function name of the
// frame skip levels above callerInfo itself.
func callerInfo(skip int) (string, int, string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return unknownFunction, 0, unknownFunction
	}
	return filepath.Base(file), line, functionNameForPC(pc)
}

func functionNameForPC(pc uintptr) string {
	if pc == 0 {
		return unknownFunction
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownFunction
	}
	return trimFunctionName(fn.Name())
}

func trimFunctionName(name string) string {
	if name == "" {
		return unknownFunction
	}
	// Remove package path and package prefix.
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownFunction
	}
	return name
}

// Package ansi provides the ANSI escape sequences and palettes used by
// tinylog when colour output is enabled. Only the bracketed level label is
// coloured; the rest of a record is always plain text.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
)

// Palette maps each tinylog level label to an escape sequence. Empty fields
// fall back to the current value when passed to SetPalette.
type Palette struct {
	Info    string
	Error   string
	Warning string
	Trace   string
	Debug   string
}

// Package-level palette used by loggers that do not carry their own.
var (
	Info    = BrightGreen
	Error   = BrightRed
	Warning = BrightYellow
	Trace   = Blue
	Debug   = Green
)

var paletteMu sync.RWMutex

// SetPalette replaces the package-level colours. Loggers constructed with an
// explicit tinylog.Options.Palette are not affected.
//
//	ansi.SetPalette(ansi.PaletteNord)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	current := snapshotLocked()
	Info = f(palette.Info, current.Info)
	Error = f(palette.Error, current.Error)
	Warning = f(palette.Warning, current.Warning)
	Trace = f(palette.Trace, current.Trace)
	Debug = f(palette.Debug, current.Debug)
}

// Snapshot returns the current package-level palette.
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Palette {
	return Palette{
		Info:    Info,
		Error:   Error,
		Warning: Warning,
		Trace:   Trace,
		Debug:   Debug,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

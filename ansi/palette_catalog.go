package ansi

import (
	"sort"
	"strings"
)

// Built-in palettes.
var (
	PaletteDefault = Palette{
		Info:    BrightGreen,
		Error:   BrightRed,
		Warning: BrightYellow,
		Trace:   Blue,
		Debug:   Green,
	}
	PaletteNord = Palette{
		Info:    "\x1b[38;5;110m",
		Error:   "\x1b[38;5;167m",
		Warning: "\x1b[38;5;222m",
		Trace:   "\x1b[38;5;67m",
		Debug:   "\x1b[38;5;108m",
	}
	PaletteDracula = Palette{
		Info:    "\x1b[38;5;84m",
		Error:   "\x1b[38;5;203m",
		Warning: "\x1b[38;5;228m",
		Trace:   "\x1b[38;5;141m",
		Debug:   "\x1b[38;5;117m",
	}
	PaletteGruvbox = Palette{
		Info:    "\x1b[38;5;142m",
		Error:   "\x1b[38;5;167m",
		Warning: "\x1b[38;5;214m",
		Trace:   "\x1b[38;5;109m",
		Debug:   "\x1b[38;5;108m",
	}
	PaletteMono = Palette{
		Info:    Bold,
		Error:   Bold,
		Warning: Bold,
		Trace:   Faint,
		Debug:   Faint,
	}
)

var namedPalettes = map[string]*Palette{
	"default": &PaletteDefault,
	"nord":    &PaletteNord,
	"dracula": &PaletteDracula,
	"gruvbox": &PaletteGruvbox,
	"mono":    &PaletteMono,
}

var paletteAliases = map[string]string{
	"doom-nord":    "nord",
	"doomnord":     "nord",
	"doom-dracula": "dracula",
	"doomdracula":  "dracula",
	"doom-gruvbox": "gruvbox",
	"doomgruvbox":  "gruvbox",
	"monochrome":   "mono",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support compatibility aliases. Unknown
// names resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette
	}
	return &PaletteDefault
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	return strings.TrimPrefix(s, "palette-")
}

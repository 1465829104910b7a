package tinylog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pkt.systems/tinylog/ansi"
)

// DefaultEnvPrefix is the prefix FromEnv uses unless WithEnvPrefix is given.
const DefaultEnvPrefix = "TINYLOG_"

// ErrUnknownLevel is wrapped by errors returned from ApplyLevelSpec for
// tokens that do not name a level.
var ErrUnknownLevel = errors.New("unknown log level token")

// FromEnvOption customizes FromEnv behavior.
type FromEnvOption func(*fromEnvConfig)

type fromEnvConfig struct {
	prefix  string
	options Options
	writer  io.Writer
}

// WithEnvPrefix overrides the environment variable prefix used by FromEnv.
func WithEnvPrefix(prefix string) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds FromEnv with explicit Options values.
func WithEnvOptions(opts Options) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter sets the destination. Defaults to os.Stdout.
func WithEnvWriter(w io.Writer) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.writer = w
	}
}

// FromEnv builds a Logger from environment variables. Environment values
// override seeded options.
//
// Recognised variables are {prefix}LEVEL, {prefix}COLOR (never|auto|always)
// and {prefix}PALETTE, plus the unprefixed NO_COLOR convention. LEVEL holds
// space separated level codes; a bare code (INF, ERR, WAR, TRC, DBG) enables
// that level and a code prefixed with ! disables it. Tokens are applied left
// to right on top of the default levels. Unknown tokens are reported with an
// ErrorLevel record and skipped.
func FromEnv(opts ...FromEnvOption) *Logger {
	cfg := fromEnvConfig{prefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.options
	writer := cfg.writer
	if writer == nil {
		writer = os.Stdout
	}
	if value, ok := lookupEnv(cfg.prefix, "COLOR"); ok {
		if mode, ok := ParseColorMode(value); ok {
			resolved.Color = mode
		}
	}
	if value, ok := os.LookupEnv("NO_COLOR"); ok && value != "" {
		resolved.Color = ColorNever
	}
	if value, ok := lookupEnv(cfg.prefix, "PALETTE"); ok {
		resolved.Palette = ansi.PaletteByName(value)
	}
	logger := NewWithOptions(writer, resolved)
	if value, ok := lookupEnv(cfg.prefix, "LEVEL"); ok {
		_ = ApplyLevelSpec(logger, value)
	}
	return logger
}

// ApplyLevelSpec applies a level specification such as "INF !DBG TRC" to l,
// left to right. Each unknown token is logged at ErrorLevel and skipped; the
// returned error joins one ErrUnknownLevel per skipped token and is nil when
// every token was applied.
func ApplyLevelSpec(l *Logger, spec string) error {
	var errs []error
	for _, token := range strings.Fields(spec) {
		code, enable := token, true
		if rest, ok := strings.CutPrefix(token, "!"); ok {
			code, enable = rest, false
		}
		level, ok := ParseLevel(code)
		if !ok {
			file, line, function := callerInfo(1)
			l.Log(ErrorLevel, "Unknown log level token '%s'", file, line, function, token)
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLevel, token))
			continue
		}
		if enable {
			l.SetLevel(level)
		} else {
			l.UnsetLevel(level)
		}
	}
	return errors.Join(errs...)
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

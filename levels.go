package tinylog

import (
	"strconv"
	"sync/atomic"
)

// Level is a log category. Each named level occupies exactly one bit so
// levels can be combined with | into a mask.
type Level uint8

const (
	// InfoLevel enables informational records.
	InfoLevel Level = 0x01
	// ErrorLevel enables error records.
	ErrorLevel Level = 0x02
	// WarningLevel enables warning records.
	WarningLevel Level = 0x04
	// TraceLevel enables trace records.
	TraceLevel Level = 0x08
	// DebugLevel enables debug records.
	DebugLevel Level = 0x10
)

// AllLevels is the mask with every named level set.
const AllLevels = InfoLevel | ErrorLevel | WarningLevel | TraceLevel | DebugLevel

const (
	infoLabel    = "INF"
	errorLabel   = "ERR"
	warningLabel = "WAR"
	traceLabel   = "TRC"
	debugLabel   = "DBG"
)

// DefaultLevels returns the mask a new Logger starts with. Builds tagged
// tinylog_release drop DebugLevel; TraceLevel is off in both.
func DefaultLevels() Level {
	return defaultLevels
}

// label returns the three character record label for a single named level.
func (l Level) label() (string, bool) {
	switch l {
	case InfoLevel:
		return infoLabel, true
	case ErrorLevel:
		return errorLabel, true
	case WarningLevel:
		return warningLabel, true
	case TraceLevel:
		return traceLabel, true
	case DebugLevel:
		return debugLabel, true
	default:
		return "", false
	}
}

// String returns the record label (INF, ERR, ...) for a named level and a
// hexadecimal form for masks and unknown values.
func (l Level) String() string {
	if s, ok := l.label(); ok {
		return s
	}
	return "Level(0x" + strconv.FormatUint(uint64(l), 16) + ")"
}

// ParseLevel maps a record label to its Level. Matching is exact: "INF",
// "ERR", "WAR", "TRC" and "DBG".
func ParseLevel(code string) (Level, bool) {
	switch code {
	case infoLabel:
		return InfoLevel, true
	case errorLabel:
		return ErrorLevel, true
	case warningLabel:
		return WarningLevel, true
	case traceLabel:
		return TraceLevel, true
	case debugLabel:
		return DebugLevel, true
	default:
		return 0, false
	}
}

// levelSet is the enabled-set of a Logger. All access goes through set,
// unset and enabled.
type levelSet struct {
	mask atomic.Uint32
}

func newLevelSet(initial Level) *levelSet {
	s := &levelSet{}
	s.mask.Store(uint32(initial))
	return s
}

func (s *levelSet) set(l Level) {
	s.mask.Or(uint32(l))
}

// unset clears l only when every bit of l is currently set.
func (s *levelSet) unset(l Level) {
	bits := uint32(l)
	for {
		old := s.mask.Load()
		if old&bits != bits {
			return
		}
		if s.mask.CompareAndSwap(old, old^bits) {
			return
		}
	}
}

func (s *levelSet) enabled(l Level) bool {
	bits := uint32(l)
	return s.mask.Load()&bits == bits
}

func (s *levelSet) load() Level {
	return Level(s.mask.Load())
}

package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity level of a log record.
// Values are spaced by ten so new levels can be slotted in later.
type Level int

const (
	// TraceLevel for very fine-grained diagnostics
	TraceLevel Level = 10
	// DebugLevel for detailed debugging information
	DebugLevel Level = 20
	// InfoLevel for general informational messages (default)
	InfoLevel Level = 30
	// WarnLevel for warning messages
	WarnLevel Level = 40
	// ErrorLevel for error messages
	ErrorLevel Level = 50
	// FatalLevel for fatal messages. Logging at this level does not exit.
	FatalLevel Level = 60
	// SilentLevel is a minimum-level setting that suppresses everything.
	// Nothing is ever emitted at SilentLevel.
	SilentLevel Level = 99
)

var levelNames = map[Level]string{
	TraceLevel:  "TRACE",
	DebugLevel:  "DEBUG",
	InfoLevel:   "INFO",
	WarnLevel:   "WARN",
	ErrorLevel:  "ERROR",
	FatalLevel:  "FATAL",
	SilentLevel: "SILENT",
}

// Levels lists the emitting levels in ascending order.
var Levels = []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}

// LevelName returns the canonical name of level, or "INFO" when the value
// matches no known level.
func LevelName(level Level) string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return "INFO"
}

// String returns the canonical name of the level
func (l Level) String() string {
	return LevelName(l)
}

// ParseLevel converts a case-insensitive level name to a Level.
// Unknown names yield InfoLevel together with an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "SILENT", "NONE":
		return SilentLevel, nil
	default:
		return InfoLevel, errors.Errorf("unknown log level %q", s)
	}
}


package logger

import "github.com/philipp01105/logplus/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel  = core.TraceLevel
	DebugLevel  = core.DebugLevel
	InfoLevel   = core.InfoLevel
	WarnLevel   = core.WarnLevel
	ErrorLevel  = core.ErrorLevel
	FatalLevel  = core.FatalLevel
	SilentLevel = core.SilentLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

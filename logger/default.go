package logger

import (
	"sync"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
	"github.com/philipp01105/logplus/transport"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a pretty console transport
	defaultLogger = NewBuilder().
		WithFormatter(formatter.NewPrettyFormatter()).
		WithTransport(transport.NewConsoleTransport(transport.ConsoleConfig{})).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Trace logs a trace message using the default logger
func Trace(message any, metadata ...any) {
	Default().Trace(message, metadata...)
}

// Debug logs a debug message using the default logger
func Debug(message any, metadata ...any) {
	Default().Debug(message, metadata...)
}

// Info logs an info message using the default logger
func Info(message any, metadata ...any) {
	Default().Info(message, metadata...)
}

// Warn logs a warning message using the default logger
func Warn(message any, metadata ...any) {
	Default().Warn(message, metadata...)
}

// Error logs an error message using the default logger
func Error(message any, metadata ...any) {
	Default().Error(message, metadata...)
}

// Fatal logs a fatal message using the default logger
func Fatal(message any, metadata ...any) {
	Default().Fatal(message, metadata...)
}

// Log logs a message at level using the default logger
func Log(level core.Level, message any, metadata ...any) {
	Default().Log(level, message, metadata...)
}

// Child creates a child of the default logger
func Child(ctx map[string]any) *Logger {
	return Default().Child(ctx)
}

// WithLevel derives a logger from the default logger with another level
func WithLevel(level core.Level) *Logger {
	return Default().WithLevel(level)
}

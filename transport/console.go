package transport

import (
	"sync/atomic"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
)

// Sink prints a printf-style template followed by its arguments
type Sink func(text string, args ...any)

// Console is a set of per-level output sinks. Any sink may be nil; PickConsole
// falls back to Log for missing ones.
type Console struct {
	Log   Sink
	Error Sink
	Warn  Sink
	Info  Sink
	Debug Sink
	Trace Sink
}

var (
	// captured is the terminal console created at package init. It is the
	// last resort of PickConsole and always has every sink set.
	captured = NewTerminalConsole(TerminalConfig{})

	defaultConsole atomic.Pointer[Console]
)

func init() {
	defaultConsole.Store(captured)
}

// DefaultConsole returns the process-wide console. It may be nil after
// SetDefaultConsole(nil).
func DefaultConsole() *Console {
	return defaultConsole.Load()
}

// SetDefaultConsole replaces the process-wide console used when no console
// is injected. Passing nil makes PickConsole use the captured terminal
// console.
func SetDefaultConsole(c *Console) {
	defaultConsole.Store(c)
}

// PickConsole selects the sink for level: ERROR and above use Error, WARN
// uses Warn, INFO uses Info, DEBUG uses Debug and everything below uses
// Trace. A missing sink falls back to Log.
//
// The console is resolved as c, then DefaultConsole, then the console
// captured at package init. When the resolved console has neither the
// level sink nor Log, the captured console's sink is used, so the result
// is never nil.
func PickConsole(c *Console, level core.Level) Sink {
	if c == nil {
		c = DefaultConsole()
	}
	if c == nil {
		c = captured
	}
	if s := c.pick(level); s != nil {
		return s
	}
	return captured.pick(level)
}

func (c *Console) pick(level core.Level) Sink {
	var s Sink
	switch {
	case level >= core.ErrorLevel:
		s = c.Error
	case level >= core.WarnLevel:
		s = c.Warn
	case level >= core.InfoLevel:
		s = c.Info
	case level >= core.DebugLevel:
		s = c.Debug
	default:
		s = c.Trace
	}
	if s == nil {
		s = c.Log
	}
	return s
}

// ConsoleConfig holds configuration for the console transport
type ConsoleConfig struct {
	// Console to print to (default: resolved by PickConsole on every call)
	Console *Console
}

// ConsoleTransport prints formatted records through a Console
type ConsoleTransport struct {
	console *Console
	stats   *Stats
}

// NewConsoleTransport creates a new console transport
func NewConsoleTransport(cfg ConsoleConfig) *ConsoleTransport {
	return &ConsoleTransport{
		console: cfg.Console,
		stats:   NewStats(),
	}
}

// Send prints result.Text with result.Args. If the sink panics, it prints
// "<timestamp> <tag><message>" followed by the record's data and error
// instead; a panic in that second call is swallowed too.
func (t *ConsoleTransport) Send(record core.Record, result formatter.Result) {
	sink := PickConsole(t.console, record.Level)
	if callSink(sink, result.Text, result.Args...) {
		t.stats.IncrementDelivered()
		return
	}

	t.stats.IncrementFallback()
	var data, errInfo any
	if record.Data != nil {
		data = record.Data
	}
	if record.Error != nil {
		errInfo = record.Error
	}
	line := record.Timestamp + " " + core.FormatLevelTag(record.LevelName) + record.Message
	if callSink(sink, line, data, errInfo) {
		t.stats.IncrementDelivered()
		return
	}
	t.stats.IncrementFailed()
}

// Stats returns a snapshot of the current statistics
func (t *ConsoleTransport) Stats() Snapshot {
	return t.stats.GetSnapshot()
}

func callSink(sink Sink, text string, args ...any) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	sink(text, args...)
	return true
}

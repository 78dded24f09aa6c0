package logger

import (
	"maps"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
	"github.com/philipp01105/logplus/transport"
)

// Options configures a Logger. Zero values select the defaults.
type Options struct {
	// Level is the minimum level emitted (default: InfoLevel)
	Level *core.Level
	// Formatter renders every emitted record (default: JSON formatter)
	Formatter formatter.Formatter
	// Transports receive every emitted record in order
	// (default: a single console transport)
	Transports []transport.Transport
	// Clock supplies record timestamps (default: core.SystemClock)
	Clock core.Clock
	// Context is attached to every record
	Context map[string]any
}

// Logger is the main logging interface (immutable)
type Logger struct {
	level      core.Level
	formatter  formatter.Formatter
	transports transport.Fanout
	clock      core.Clock
	context    map[string]any
}

// New creates a Logger from opts, filling in defaults for unset fields.
// The transports slice and context map are copied.
func New(opts Options) *Logger {
	l := &Logger{
		level:     core.InfoLevel,
		formatter: opts.Formatter,
		clock:     opts.Clock,
		context:   maps.Clone(opts.Context),
	}
	if opts.Level != nil {
		l.level = *opts.Level
	}
	if l.formatter == nil {
		l.formatter = formatter.NewJSONFormatter()
	}
	if l.clock == nil {
		l.clock = core.SystemClock
	}
	if l.context == nil {
		l.context = map[string]any{}
	}

	for _, t := range opts.Transports {
		if t != nil {
			l.transports = append(l.transports, t)
		}
	}
	if len(l.transports) == 0 {
		l.transports = transport.Fanout{transport.NewConsoleTransport(transport.ConsoleConfig{})}
	}
	return l
}

// LevelPtr returns a pointer to level, for use in Options.
func LevelPtr(level core.Level) *core.Level {
	return &level
}

// Level returns the minimum level emitted by the logger
func (l *Logger) Level() core.Level {
	return l.level
}

// Child creates a new Logger whose context is the receiver's context
// merged with ctx. Keys in ctx win. The receiver is not modified.
func (l *Logger) Child(ctx map[string]any) *Logger {
	merged := make(map[string]any, len(l.context)+len(ctx))
	maps.Copy(merged, l.context)
	maps.Copy(merged, ctx)

	child := l.clone()
	child.context = merged
	return child
}

// WithLevel creates a new Logger with a different minimum level. Context,
// formatter, transports and clock are kept.
func (l *Logger) WithLevel(level core.Level) *Logger {
	derived := l.clone()
	derived.level = level
	return derived
}

func (l *Logger) clone() *Logger {
	return &Logger{
		level:      l.level,
		formatter:  l.formatter,
		transports: append(transport.Fanout(nil), l.transports...),
		clock:      l.clock,
		context:    maps.Clone(l.context),
	}
}

// Log emits message at level. Only the first metadata value is used:
// an error becomes the record's error, anything else its data.
// SilentLevel and above are never emitted.
func (l *Logger) Log(level core.Level, message any, metadata ...any) {
	// Level check before any other work
	if level < l.level || level >= core.SilentLevel {
		return
	}
	l.log(level, message, metadata)
}

func (l *Logger) log(level core.Level, message any, metadata []any) {
	record := core.Record{
		Level:     level,
		LevelName: core.LevelName(level),
		Timestamp: core.FormatTimestamp(l.clock()),
		Message:   core.CoerceMessage(message),
	}
	if len(metadata) > 0 {
		payload := core.SplitMetadata(metadata[0])
		record.Data = payload.Data
		record.Error = payload.Error
	}
	if len(l.context) > 0 {
		record.Context = maps.Clone(l.context)
	}

	l.transports.Send(record, l.format(record))
}

// format runs the formatter once. A panicking formatter yields an empty
// result, which transports fill with their defaults.
func (l *Logger) format(record core.Record) (result formatter.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = formatter.Result{}
		}
	}()
	return l.formatter.Format(record)
}

// Trace logs a trace message
func (l *Logger) Trace(message any, metadata ...any) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, message, metadata)
}

// Debug logs a debug message
func (l *Logger) Debug(message any, metadata ...any) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, message, metadata)
}

// Info logs an info message
func (l *Logger) Info(message any, metadata ...any) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, message, metadata)
}

// Warn logs a warning message
func (l *Logger) Warn(message any, metadata ...any) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, message, metadata)
}

// Error logs an error message
func (l *Logger) Error(message any, metadata ...any) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, message, metadata)
}

// Fatal logs a fatal message. It does not exit the process.
func (l *Logger) Fatal(message any, metadata ...any) {
	if core.FatalLevel < l.level {
		return
	}
	l.log(core.FatalLevel, message, metadata)
}

// Close closes every transport that implements io.Closer. Transports are
// shared with derived loggers, so close only the root logger.
func (l *Logger) Close() error {
	return l.transports.Close()
}

package logger

import (
	"maps"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
	"github.com/philipp01105/logplus/transport"
)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	opts Options
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLevel sets the minimum log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.opts.Level = LevelPtr(level)
	return b
}

// WithFormatter sets the formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.opts.Formatter = f
	return b
}

// WithTransport appends transports
func (b *Builder) WithTransport(transports ...transport.Transport) *Builder {
	b.opts.Transports = append(b.opts.Transports, transports...)
	return b
}

// WithClock sets the clock used for timestamps
func (b *Builder) WithClock(clock core.Clock) *Builder {
	b.opts.Clock = clock
	return b
}

// WithCoarseClock uses the cached coarse clock for timestamps
func (b *Builder) WithCoarseClock() *Builder {
	b.opts.Clock = core.CoarseClock()
	return b
}

// WithContext adds context values to all records
func (b *Builder) WithContext(ctx map[string]any) *Builder {
	if b.opts.Context == nil {
		b.opts.Context = make(map[string]any, len(ctx))
	}
	maps.Copy(b.opts.Context, ctx)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return New(b.opts)
}

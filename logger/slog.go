package logger

import (
	"context"
	"log/slog"

	"github.com/philipp01105/logplus/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Logger.
// Record attributes become the record's data; attributes added with
// WithAttrs become context through Child.
type SlogHandler struct {
	logger *Logger
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.logger.Level()
}

// Handle emits the slog.Record through the wrapped Logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var data map[string]any
	if record.NumAttrs() > 0 {
		data = make(map[string]any, record.NumAttrs())
		record.Attrs(func(a slog.Attr) bool {
			addAttr(data, s.group, a)
			return true
		})
	}

	if len(data) == 0 {
		s.logger.Log(slogLevelToCore(record.Level), record.Message)
		return nil
	}
	s.logger.Log(slogLevelToCore(record.Level), record.Message, data)
	return nil
}

// WithAttrs returns a new SlogHandler whose logger carries attrs as context.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	ctx := make(map[string]any, len(attrs))
	for _, a := range attrs {
		addAttr(ctx, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger.Child(ctx),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// addAttr stores a under its group-prefixed key. Group attributes are
// flattened into dotted keys; an empty group key inlines its members.
func addAttr(dst map[string]any, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, member := range a.Value.Group() {
			addAttr(dst, key, member)
		}
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			dst[key] = err.Error()
			return
		}
		dst[key] = a.Value.Any()
	default:
		dst[key] = a.Value.Any()
	}
}

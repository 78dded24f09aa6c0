package transport

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
)

// ZapTransport forwards records into a zap logger. The zap logger's own
// level and encoder decide what is written and how; the formatter result
// is not used.
type ZapTransport struct {
	logger *zap.Logger
}

// NewZapTransport creates a new zap transport. A nil logger yields a
// transport that drops every record.
func NewZapTransport(l *zap.Logger) *ZapTransport {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapTransport{logger: l}
}

// Send writes the record as a zap entry. FATAL maps to zap's error level
// so that forwarding never terminates the process.
func (t *ZapTransport) Send(record core.Record, _ formatter.Result) {
	ce := t.logger.Check(zapLevel(record.Level), record.Message)
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, 5)
	fields = append(fields,
		zap.String("levelName", record.LevelName),
		zap.String("timestamp", record.Timestamp),
	)
	if record.Data != nil {
		fields = append(fields, zap.Any("data", record.Data))
	}
	if record.Error != nil {
		fields = append(fields, zap.Object("error", errorInfoMarshaler{record.Error}))
	}
	if record.Context != nil {
		fields = append(fields, zap.Any("context", record.Context))
	}
	ce.Write(fields...)
}

// Close flushes the zap logger
func (t *ZapTransport) Close() error {
	return t.logger.Sync()
}

func zapLevel(level core.Level) zapcore.Level {
	switch {
	case level >= core.ErrorLevel:
		return zapcore.ErrorLevel
	case level >= core.WarnLevel:
		return zapcore.WarnLevel
	case level >= core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

type errorInfoMarshaler struct{ info *core.ErrorInfo }

func (m errorInfoMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", m.info.Name)
	enc.AddString("message", m.info.Message)
	if m.info.Stack != "" {
		enc.AddString("stack", m.info.Stack)
	}
	return nil
}

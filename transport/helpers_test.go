package transport

import (
	"sync"

	"github.com/philipp01105/logplus/core"
)

type sinkCall struct {
	sink string
	text string
	args []any
}

// recorder captures sink invocations by sink name
type recorder struct {
	mu    sync.Mutex
	calls []sinkCall
}

func (r *recorder) sink(name string) Sink {
	return func(text string, args ...any) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, sinkCall{sink: name, text: text, args: args})
	}
}

func (r *recorder) console() *Console {
	return &Console{
		Log:   r.sink("log"),
		Error: r.sink("error"),
		Warn:  r.sink("warn"),
		Info:  r.sink("info"),
		Debug: r.sink("debug"),
		Trace: r.sink("trace"),
	}
}

func (r *recorder) snapshot() []sinkCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sinkCall(nil), r.calls...)
}

func testRecord(level core.Level, msg string) core.Record {
	return core.Record{
		Level:     level,
		LevelName: core.LevelName(level),
		Timestamp: "2025-09-25 20:41:12",
		Message:   msg,
	}
}

package transport

import (
	"io"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
)

// Transport delivers a formatted record somewhere
type Transport interface {
	// Send delivers one record. It must not panic or block on remote I/O.
	Send(record core.Record, result formatter.Result)
}

// Func adapts an ordinary function to the Transport interface.
type Func func(record core.Record, result formatter.Result)

// Send calls f(record, result).
func (f Func) Send(record core.Record, result formatter.Result) {
	f(record, result)
}

// Fanout sends each record to every transport in order
type Fanout []Transport

// Send dispatches to all transports in configured order. A panicking
// transport is skipped and the remaining ones still receive the record.
func (f Fanout) Send(record core.Record, result formatter.Result) {
	for _, t := range f {
		sendGuarded(t, record, result)
	}
}

// Close closes every transport that implements io.Closer and returns the
// last error encountered.
func (f Fanout) Close() error {
	var lastErr error
	for _, t := range f {
		if c, ok := t.(io.Closer); ok {
			if err := c.Close(); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}

func sendGuarded(t Transport, record core.Record, result formatter.Result) {
	defer func() {
		_ = recover()
	}()
	t.Send(record, result)
}

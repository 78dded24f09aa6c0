package formatter

import (
	"encoding/json"

	"github.com/valyala/bytebufferpool"

	"github.com/philipp01105/logplus/core"
)

// Result is the rendered output of a Formatter. Any field may be empty.
type Result struct {
	// Text is a printf-style template for style-capable sinks
	Text string
	// Args are the positional arguments consumed by Text's directives
	Args []any
	// JSON is a value ready for JSON serialization
	JSON any
}

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format renders a record. It must not mutate the record.
	Format(record core.Record) Result
}

// Func adapts an ordinary function to the Formatter interface.
type Func func(record core.Record) Result

// Format calls f(record).
func (f Func) Format(record core.Record) Result {
	return f(record)
}

var bufferPool bytebufferpool.Pool

// Payload returns the JSON encoding of result.JSON, or of record when the
// formatter produced no JSON rendition. The trailing newline written by
// the encoder is stripped.
func Payload(record core.Record, result Result) ([]byte, error) {
	var v any = record
	if result.JSON != nil {
		v = result.JSON
	}

	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	b := buf.B
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

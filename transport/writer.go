package transport

import (
	"io"
	"os"

	"github.com/valyala/bytebufferpool"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
)

// WriterTransport writes one JSON document per line to an io.Writer.
// Writes are serialized, so the writer may be shared between loggers.
type WriterTransport struct {
	out   *lockedWriter
	pool  bytebufferpool.Pool
	stats *Stats
}

// NewWriterTransport creates a new writer transport
func NewWriterTransport(w io.Writer) *WriterTransport {
	return &WriterTransport{
		out:   &lockedWriter{w: w},
		stats: NewStats(),
	}
}

// Send writes the JSON payload followed by a newline
func (t *WriterTransport) Send(record core.Record, result formatter.Result) {
	body, err := formatter.Payload(record, result)
	if err != nil {
		t.stats.IncrementFailed()
		return
	}

	buf := t.pool.Get()
	defer t.pool.Put(buf)
	_, _ = buf.Write(body)
	_ = buf.WriteByte('\n')

	if _, err := t.out.Write(buf.B); err != nil {
		t.stats.IncrementFailed()
		return
	}
	t.stats.IncrementDelivered()
}

// Close closes the underlying writer when it implements io.Closer.
// The process's standard streams are left open.
func (t *WriterTransport) Close() error {
	if t.out.w == os.Stdout || t.out.w == os.Stderr {
		return nil
	}
	if c, ok := t.out.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (t *WriterTransport) Stats() Snapshot {
	return t.stats.GetSnapshot()
}

package benchmark

import (
	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
	"github.com/philipp01105/logplus/transport"
)

type noopTransport struct{}

func newNoopTransport() transport.Transport {
	return noopTransport{}
}

func (noopTransport) Send(record core.Record, result formatter.Result) {
	_ = len(record.Message) + len(result.Text)
}

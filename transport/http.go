package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
)

// RequestFunc performs one POST of body to url with the given header.
type RequestFunc func(ctx context.Context, url string, header http.Header, body []byte) error

// DefaultRequestFunc is used by HTTP transports created without their own
// RequestFunc. Setting it to nil makes such transports no-ops.
var DefaultRequestFunc RequestFunc = ClientRequestFunc(cleanhttp.DefaultPooledClient())

// ClientRequestFunc returns a RequestFunc backed by client. Responses with
// a status outside 2xx are reported as errors.
func ClientRequestFunc(client *http.Client) RequestFunc {
	return func(ctx context.Context, url string, header http.Header, body []byte) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return errors.Wrap(err, "build request")
		}
		req.Header = header.Clone()

		resp, err := client.Do(req)
		if err != nil {
			return errors.Wrap(err, "post log record")
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return errors.Errorf("post log record: unexpected status %d", resp.StatusCode)
		}
		return nil
	}
}

// HTTPConfig holds configuration for the HTTP transport
type HTTPConfig struct {
	// URL receives one POST per record
	URL string
	// Request performs the POST (default: DefaultRequestFunc at construction)
	Request RequestFunc
	// Timeout bounds each request (default: 5s)
	Timeout time.Duration
}

// HTTPTransport ships records as JSON over HTTP, fire-and-forget
type HTTPTransport struct {
	url     string
	request RequestFunc
	timeout time.Duration
	header  http.Header
	mu      sync.RWMutex // guards closed and wg.Add against Close
	wg      sync.WaitGroup
	closed  bool
	stats   *Stats
}

// NewHTTPTransport creates a new HTTP transport. The request function is
// resolved once here; when neither cfg.Request nor DefaultRequestFunc is
// set the transport does nothing.
func NewHTTPTransport(cfg HTTPConfig) *HTTPTransport {
	if cfg.Request == nil {
		cfg.Request = DefaultRequestFunc
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &HTTPTransport{
		url:     cfg.URL,
		request: cfg.Request,
		timeout: cfg.Timeout,
		header:  header,
		stats:   NewStats(),
	}
}

// Send encodes result.JSON, or the record when the formatter produced no
// JSON, and posts it on a background goroutine. Send never blocks on the
// network and never reports failures to the caller.
func (t *HTTPTransport) Send(record core.Record, result formatter.Result) {
	if t.request == nil {
		return
	}

	body, err := formatter.Payload(record, result)
	if err != nil {
		t.stats.IncrementFailed()
		return
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return
	}
	t.wg.Add(1)
	go t.post(body)
}

func (t *HTTPTransport) post(body []byte) {
	defer t.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			t.stats.IncrementFailed()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	if err := t.request(ctx, t.url, t.header.Clone(), body); err != nil {
		t.stats.IncrementFailed()
		return
	}
	t.stats.IncrementDelivered()
}

// Close stops accepting records and waits for in-flight requests.
func (t *HTTPTransport) Close() error {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.wg.Wait()
	return nil
}

// Stats returns a snapshot of the current statistics
func (t *HTTPTransport) Stats() Snapshot {
	return t.stats.GetSnapshot()
}

package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
)

type capturedRequest struct {
	url    string
	header http.Header
	body   []byte
}

type requestRecorder struct {
	mu       sync.Mutex
	requests []capturedRequest
	err      error
}

func (r *requestRecorder) do(_ context.Context, url string, header http.Header, body []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, capturedRequest{url: url, header: header, body: body})
	return r.err
}

func (r *requestRecorder) snapshot() []capturedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]capturedRequest(nil), r.requests...)
}

func TestHTTPTransport_NoRequestFunc(t *testing.T) {
	orig := DefaultRequestFunc
	DefaultRequestFunc = nil
	defer func() { DefaultRequestFunc = orig }()

	tr := NewHTTPTransport(HTTPConfig{URL: "https://example.com"})

	assert.NotPanics(t, func() {
		tr.Send(testRecord(core.DebugLevel, "ping"), formatter.Result{})
	})
	require.NoError(t, tr.Close())
	assert.Equal(t, Snapshot{}, tr.Stats())
}

func TestHTTPTransport_ResolvesDefaultAtConstruction(t *testing.T) {
	rec := &requestRecorder{}
	orig := DefaultRequestFunc
	DefaultRequestFunc = rec.do
	tr := NewHTTPTransport(HTTPConfig{URL: "https://example.com"})
	DefaultRequestFunc = orig

	tr.Send(testRecord(core.InfoLevel, "x"), formatter.Result{})
	require.NoError(t, tr.Close())

	assert.Len(t, rec.snapshot(), 1)
}

func TestHTTPTransport_PostsFormattedJSON(t *testing.T) {
	rec := &requestRecorder{}
	tr := NewHTTPTransport(HTTPConfig{URL: "https://example.com/logs", Request: rec.do})

	tr.Send(testRecord(core.ErrorLevel, "boom"), formatter.Result{JSON: map[string]bool{"custom": true}})
	require.NoError(t, tr.Close())

	reqs := rec.snapshot()
	require.Len(t, reqs, 1)
	assert.Equal(t, "https://example.com/logs", reqs[0].url)
	assert.Equal(t, "application/json", reqs[0].header.Get("content-type"))
	assert.JSONEq(t, `{"custom":true}`, string(reqs[0].body))
	assert.Equal(t, Snapshot{Delivered: 1}, tr.Stats())
}

func TestHTTPTransport_PostsRawRecord(t *testing.T) {
	rec := &requestRecorder{}
	tr := NewHTTPTransport(HTTPConfig{URL: "https://example.com", Request: rec.do})

	record := testRecord(core.TraceLevel, "trace")
	tr.Send(record, formatter.Result{Text: "ignored"})
	require.NoError(t, tr.Close())

	reqs := rec.snapshot()
	require.Len(t, reqs, 1)

	var got core.Record
	require.NoError(t, json.Unmarshal(reqs[0].body, &got))
	assert.Equal(t, record, got)
}

func TestHTTPTransport_SwallowsFailures(t *testing.T) {
	rec := &requestRecorder{err: errors.New("network")}
	tr := NewHTTPTransport(HTTPConfig{URL: "https://example.com", Request: rec.do})

	assert.NotPanics(t, func() {
		tr.Send(testRecord(core.InfoLevel, "ignored"), formatter.Result{})
	})

	panicking := NewHTTPTransport(HTTPConfig{
		URL: "https://example.com",
		Request: func(context.Context, string, http.Header, []byte) error {
			panic("transport bug")
		},
	})
	assert.NotPanics(t, func() {
		panicking.Send(testRecord(core.InfoLevel, "ignored"), formatter.Result{})
	})

	require.NoError(t, tr.Close())
	require.NoError(t, panicking.Close())
	assert.Len(t, rec.snapshot(), 1)
	assert.Equal(t, Snapshot{Failed: 1}, tr.Stats())
	assert.Equal(t, Snapshot{Failed: 1}, panicking.Stats())
}

func TestHTTPTransport_DoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	tr := NewHTTPTransport(HTTPConfig{
		URL: "https://example.com",
		Request: func(ctx context.Context, _ string, _ http.Header, _ []byte) error {
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	returned := make(chan struct{})
	go func() {
		tr.Send(testRecord(core.InfoLevel, "slow"), formatter.Result{})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on the request")
	}

	close(release)
	require.NoError(t, tr.Close())
	assert.Equal(t, Snapshot{Delivered: 1}, tr.Stats())
}

func TestHTTPTransport_Timeout(t *testing.T) {
	tr := NewHTTPTransport(HTTPConfig{
		URL:     "https://example.com",
		Timeout: 10 * time.Millisecond,
		Request: func(ctx context.Context, _ string, _ http.Header, _ []byte) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})

	tr.Send(testRecord(core.InfoLevel, "slow"), formatter.Result{})
	require.NoError(t, tr.Close())
	assert.Equal(t, Snapshot{Failed: 1}, tr.Stats())
}

func TestHTTPTransport_Unencodable(t *testing.T) {
	rec := &requestRecorder{}
	tr := NewHTTPTransport(HTTPConfig{URL: "https://example.com", Request: rec.do})

	tr.Send(testRecord(core.InfoLevel, "x"), formatter.Result{JSON: func() {}})
	require.NoError(t, tr.Close())

	assert.Empty(t, rec.snapshot())
	assert.Equal(t, Snapshot{Failed: 1}, tr.Stats())
}

func TestHTTPTransport_SendAfterClose(t *testing.T) {
	rec := &requestRecorder{}
	tr := NewHTTPTransport(HTTPConfig{URL: "https://example.com", Request: rec.do})
	require.NoError(t, tr.Close())

	tr.Send(testRecord(core.InfoLevel, "late"), formatter.Result{})
	assert.Empty(t, rec.snapshot())
}

func TestClientRequestFunc(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(HTTPConfig{URL: srv.URL, Request: ClientRequestFunc(srv.Client())})
	tr.Send(testRecord(core.WarnLevel, "over http"), formatter.Result{JSON: map[string]string{"msg": "over http"}})
	require.NoError(t, tr.Close())

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.JSONEq(t, `{"msg":"over http"}`, string(gotBody))
	assert.Equal(t, Snapshot{Delivered: 1}, tr.Stats())
}

func TestClientRequestFunc_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	header := make(http.Header)
	err := ClientRequestFunc(srv.Client())(context.Background(), srv.URL, header, []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logplus/formatter"
	"github.com/philipp01105/logplus/transport"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
level: debug
format: pretty
console: true
writer: stderr
http:
  url: https://logs.example.com/ingest
  timeout: 2s
context:
  service: api
  replicas: 3
`))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Level:   "debug",
		Format:  "pretty",
		Console: true,
		Writer:  "stderr",
		HTTP: HTTPConfig{
			URL:     "https://logs.example.com/ingest",
			Timeout: 2 * time.Second,
		},
		Context: map[string]any{"service": "api", "replicas": 3},
	}, cfg)
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("levle: debug\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	_, err = ParseConfig([]byte("level: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logplus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: warn\nformat: json\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Level)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromConfig_Defaults(t *testing.T) {
	l, err := FromConfig(Config{})
	require.NoError(t, err)

	assert.Equal(t, InfoLevel, l.Level())
	assert.IsType(t, &formatter.JSONFormatter{}, l.formatter)
	require.Len(t, l.transports, 1)
	assert.IsType(t, &transport.ConsoleTransport{}, l.transports[0])
}

func TestFromConfig_Transports(t *testing.T) {
	var posted []string
	orig := transport.DefaultRequestFunc
	transport.DefaultRequestFunc = func(_ context.Context, url string, _ http.Header, _ []byte) error {
		posted = append(posted, url)
		return nil
	}
	defer func() { transport.DefaultRequestFunc = orig }()

	path := filepath.Join(t.TempDir(), "app.jsonl")
	l, err := FromConfig(Config{
		Level:   "trace",
		Format:  "pretty",
		Console: true,
		Writer:  path,
		HTTP:    HTTPConfig{URL: "https://logs.example.com"},
		Context: map[string]any{"service": "api"},
	})
	require.NoError(t, err)

	assert.Equal(t, TraceLevel, l.Level())
	assert.IsType(t, &formatter.PrettyFormatter{}, l.formatter)
	require.Len(t, l.transports, 3)
	assert.IsType(t, &transport.ConsoleTransport{}, l.transports[0])
	assert.IsType(t, &transport.WriterTransport{}, l.transports[1])
	assert.IsType(t, &transport.HTTPTransport{}, l.transports[2])
	assert.Equal(t, map[string]any{"service": "api"}, l.context)

	l.Child(map[string]any{"silenced": true}).WithLevel(SilentLevel).Fatal("not written")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(data)))
	assert.Empty(t, posted)
}

func TestFromConfig_WriterOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.jsonl")
	l, err := FromConfig(Config{Writer: path})
	require.NoError(t, err)

	l.Info("written", map[string]any{"n": 1})
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"written","data":{"n":1}`)
}

func TestFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"level", Config{Level: "loud"}, "config level"},
		{"format", Config{Format: "xml"}, "unknown format"},
		{"writer", Config{Writer: filepath.Join(t.TempDir(), "missing", "app.jsonl")}, "config writer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromConfig(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

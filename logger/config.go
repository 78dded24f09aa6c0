package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/formatter"
	"github.com/philipp01105/logplus/transport"
)

// Config is the file representation of a Logger.
//
//	level: debug
//	format: pretty
//	console: true
//	writer: /var/log/app.jsonl
//	http:
//	  url: https://logs.example.com/ingest
//	  timeout: 2s
//	context:
//	  service: api
type Config struct {
	// Level is a level name (default: info)
	Level string `yaml:"level"`
	// Format is "json" or "pretty" (default: json)
	Format string `yaml:"format"`
	// Console enables the console transport. It is also used when no
	// other transport is configured.
	Console bool `yaml:"console"`
	// Writer is "stdout", "stderr" or a file path receiving JSON lines
	Writer string `yaml:"writer"`
	// HTTP configures the HTTP transport; it is enabled by a non-empty URL
	HTTP HTTPConfig `yaml:"http"`
	// Context is attached to every record
	Context map[string]any `yaml:"context"`
}

// HTTPConfig is the http section of Config
type HTTPConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// LoadConfig reads and parses a YAML config file
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return cfg, nil
}

// ParseConfig parses a YAML config document. Unknown keys are rejected and
// an empty document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

// FromConfig builds a Logger from cfg. Transports are added in the order
// console, writer, http, followed by extra.
func FromConfig(cfg Config, extra ...transport.Transport) (*Logger, error) {
	b := NewBuilder().WithContext(cfg.Context)

	if cfg.Level != "" {
		level, err := core.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrap(err, "config level")
		}
		b.WithLevel(level)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json":
		b.WithFormatter(formatter.NewJSONFormatter())
	case "pretty":
		b.WithFormatter(formatter.NewPrettyFormatter())
	default:
		return nil, errors.Errorf("config format: unknown format %q", cfg.Format)
	}

	if cfg.Console {
		b.WithTransport(transport.NewConsoleTransport(transport.ConsoleConfig{}))
	}

	switch cfg.Writer {
	case "":
	case "stdout":
		b.WithTransport(transport.NewWriterTransport(os.Stdout))
	case "stderr":
		b.WithTransport(transport.NewWriterTransport(os.Stderr))
	default:
		f, err := os.OpenFile(cfg.Writer, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "config writer")
		}
		b.WithTransport(transport.NewWriterTransport(f))
	}

	if cfg.HTTP.URL != "" {
		b.WithTransport(transport.NewHTTPTransport(transport.HTTPConfig{
			URL:     cfg.HTTP.URL,
			Timeout: cfg.HTTP.Timeout,
		}))
	}

	return b.WithTransport(extra...).Build(), nil
}

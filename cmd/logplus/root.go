package main

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipp01105/logplus/core"
	"github.com/philipp01105/logplus/logger"
	"github.com/philipp01105/logplus/transport"
)

type rootOptions struct {
	configPath string
	level      string
	format     string
	color      string
	httpURL    string
	context    map[string]string

	log *logger.Logger
}

func newRootCmd(version string) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "logplus",
		Short:         "Emit structured log records",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.buildLogger(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&opts.level, "level", "l", "", "minimum level (trace, debug, info, warn, error, fatal, silent)")
	flags.StringVarP(&opts.format, "format", "f", "", "output format (json, pretty)")
	flags.StringVar(&opts.color, "color", "auto", "colorize console output (auto, always, never)")
	flags.StringVar(&opts.httpURL, "http-url", "", "also POST every record to this URL")
	flags.StringToStringVar(&opts.context, "context", nil, "context attached to every record (key=value,...)")

	cmd.AddCommand(newEmitCmd(opts), newPipeCmd(opts))
	return cmd, opts
}

// execute runs cmd and then closes the logger it built, whether or not the
// command failed, so in-flight HTTP posts are flushed.
func execute(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	err := cmd.ExecuteContext(ctx)
	if opts.log != nil {
		if cerr := opts.log.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// buildLogger merges the config file with flags and routes the console to
// the command's output streams.
func (o *rootOptions) buildLogger(cmd *cobra.Command) error {
	var cfg logger.Config
	if o.configPath != "" {
		loaded, err := logger.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if o.level != "" {
		cfg.Level = o.level
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	if o.httpURL != "" {
		cfg.HTTP.URL = o.httpURL
	}
	if len(o.context) > 0 {
		if cfg.Context == nil {
			cfg.Context = make(map[string]any, len(o.context))
		}
		for k, v := range o.context {
			cfg.Context[k] = v
		}
	}

	mode, err := parseColorMode(o.color)
	if err != nil {
		return err
	}
	transport.SetDefaultConsole(transport.NewTerminalConsole(transport.TerminalConfig{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Color:  mode,
	}))

	// JSON results carry no console text, so print them as JSON lines
	var extra []transport.Transport
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if (format == "" || format == "json") && !cfg.Console && cfg.Writer == "" {
		extra = append(extra, transport.NewWriterTransport(cmd.OutOrStdout()))
	}

	l, err := logger.FromConfig(cfg, extra...)
	if err != nil {
		return err
	}
	o.log = l
	return nil
}

func parseColorMode(s string) (transport.ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return transport.ColorAuto, nil
	case "always":
		return transport.ColorAlways, nil
	case "never":
		return transport.ColorNever, nil
	default:
		return transport.ColorAuto, errors.Errorf("unknown color mode %q", s)
	}
}

func newEmitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "emit LEVEL MESSAGE [KEY=VALUE...]",
		Short: "Emit a single record",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			level, err := core.ParseLevel(args[0])
			if err != nil {
				return err
			}
			if level >= core.SilentLevel {
				return errors.Errorf("%s is not an emitting level", args[0])
			}
			data, err := parsePairs(args[2:])
			if err != nil {
				return err
			}
			if data == nil {
				opts.log.Log(level, args[1])
				return nil
			}
			opts.log.Log(level, args[1], data)
			return nil
		},
	}
}

func parsePairs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	data := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid data %q: want KEY=VALUE", p)
		}
		data[k] = v
	}
	return data, nil
}

func newPipeCmd(opts *rootOptions) *cobra.Command {
	var levelName string

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Emit one record per line read from stdin",
		Long: `Emit one record per line read from stdin.

Lines holding a JSON object are split: "message" (or "msg") becomes the
message, "level" overrides the level and the remaining keys become data.
Any other line is emitted as the message.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := core.ParseLevel(levelName)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if ctx != nil && ctx.Err() != nil {
					return nil
				}
				emitLine(opts.log, level, scanner.Text())
			}
			return errors.Wrap(scanner.Err(), "read stdin")
		},
	}

	cmd.Flags().StringVar(&levelName, "as", "info", "level for lines without a level")
	return cmd
}

func emitLine(l *logger.Logger, level core.Level, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil || obj == nil {
		l.Log(level, line)
		return
	}

	message := any(line)
	for _, key := range []string{"message", "msg"} {
		if m, ok := obj[key]; ok {
			message = m
			delete(obj, key)
			break
		}
	}
	if name, ok := obj["level"].(string); ok {
		if parsed, err := core.ParseLevel(name); err == nil && parsed < core.SilentLevel {
			level = parsed
			delete(obj, "level")
		}
	}

	if len(obj) == 0 {
		l.Log(level, message)
		return
	}
	l.Log(level, message, obj)
}

package transport

import (
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/valyala/bytebufferpool"

	"github.com/philipp01105/logplus/core"
)

// ColorMode controls ANSI styling of terminal output
type ColorMode int

const (
	// ColorAuto styles output when the destination is a terminal and
	// NO_COLOR is unset
	ColorAuto ColorMode = iota
	// ColorAlways always styles output
	ColorAlways
	// ColorNever never styles output
	ColorNever
)

// TerminalConfig holds configuration for a terminal console
type TerminalConfig struct {
	// Stdout receives Log, Info, Debug and Trace output (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives Warn and Error output (default: os.Stderr)
	Stderr io.Writer
	// Color selects when "%c" directives become ANSI styles (default: ColorAuto)
	Color ColorMode
}

// NewTerminalConsole creates a Console that renders printf-style templates
// the way a browser console does:
//
//   - %c consumes a CSS-like style ("color:#e53935;font-weight:600") that
//     applies until the next %c
//   - %o, %O, %j and %s consume a value and print it as JSON, strings as-is
//   - %d and %i consume an integer, %f a number
//   - %% prints a percent sign
//
// Arguments left over after the template are appended separated by
// spaces; nil arguments are skipped.
func NewTerminalConsole(cfg TerminalConfig) *Console {
	stdout, stdoutProbe := cfg.Stdout, cfg.Stdout
	if stdout == nil {
		stdout, stdoutProbe = colorable.NewColorableStdout(), os.Stdout
	}
	stderr, stderrProbe := cfg.Stderr, cfg.Stderr
	if stderr == nil {
		stderr, stderrProbe = colorable.NewColorableStderr(), os.Stderr
	}

	out := newRenderer(stdout, useColor(cfg.Color, stdoutProbe))
	errOut := newRenderer(stderr, useColor(cfg.Color, stderrProbe))

	return &Console{
		Log:   out.print,
		Info:  out.print,
		Debug: out.print,
		Trace: out.print,
		Warn:  errOut.print,
		Error: errOut.print,
	}
}

func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// lockedWriter serializes Write calls on a shared writer
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

type renderer struct {
	out   *lockedWriter
	color bool
	pool  bytebufferpool.Pool
}

func newRenderer(w io.Writer, useColor bool) *renderer {
	return &renderer{out: &lockedWriter{w: w}, color: useColor}
}

// print renders one line and writes it with a single Write call.
func (r *renderer) print(text string, args ...any) {
	buf := r.pool.Get()
	defer r.pool.Put(buf)

	rest := r.render(buf, text, args)
	for _, arg := range rest {
		if arg == nil {
			continue
		}
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(core.CoerceMessage(arg))
	}
	_ = buf.WriteByte('\n')

	_, _ = r.out.Write(buf.B)
}

// render expands the directives of text into buf and returns the
// arguments it did not consume.
func (r *renderer) render(buf *bytebufferpool.ByteBuffer, text string, args []any) []any {
	var (
		segment strings.Builder
		style   *color.Color
	)
	flush := func() {
		if segment.Len() == 0 {
			return
		}
		if style != nil {
			_, _ = buf.WriteString(style.Sprint(segment.String()))
		} else {
			_, _ = buf.WriteString(segment.String())
		}
		segment.Reset()
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' || i+1 >= len(text) {
			segment.WriteByte(c)
			continue
		}

		verb := text[i+1]
		if verb == '%' {
			segment.WriteByte('%')
			i++
			continue
		}
		if !strings.ContainsRune("coOjsdif", rune(verb)) || len(args) == 0 {
			segment.WriteByte(c)
			continue
		}

		arg := args[0]
		args = args[1:]
		i++

		switch verb {
		case 'c':
			flush()
			css, _ := arg.(string)
			style = r.styleFor(css)
		case 'o', 'O', 'j', 's':
			segment.WriteString(core.CoerceMessage(arg))
		case 'd', 'i':
			segment.WriteString(formatNumber(arg, true))
		case 'f':
			segment.WriteString(formatNumber(arg, false))
		}
	}
	flush()
	return args
}

func (r *renderer) styleFor(css string) *color.Color {
	if !r.color {
		return nil
	}
	attrs := parseStyle(css)
	if len(attrs) == 0 {
		return nil
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var (
	foregrounds = map[string]color.Attribute{
		"black":   color.FgBlack,
		"gray":    color.FgHiBlack,
		"grey":    color.FgHiBlack,
		"#888":    color.FgHiBlack,
		"red":     color.FgRed,
		"#e53935": color.FgRed,
		"green":   color.FgGreen,
		"yellow":  color.FgYellow,
		"#f9a825": color.FgYellow,
		"blue":    color.FgBlue,
		"#1e88e5": color.FgBlue,
		"magenta": color.FgMagenta,
		"cyan":    color.FgCyan,
		"white":   color.FgHiWhite,
		"#fff":    color.FgHiWhite,
	}
	backgrounds = map[string]color.Attribute{
		"black":   color.BgBlack,
		"red":     color.BgRed,
		"#e53935": color.BgRed,
		"green":   color.BgGreen,
		"yellow":  color.BgYellow,
		"#f9a825": color.BgYellow,
		"blue":    color.BgBlue,
		"#1e88e5": color.BgBlue,
		"white":   color.BgWhite,
		"#fff":    color.BgWhite,
	}
)

// parseStyle maps the CSS declarations a terminal can express to ANSI
// attributes. Unknown properties and values are ignored.
func parseStyle(css string) []color.Attribute {
	var attrs []color.Attribute
	for _, decl := range strings.Split(css, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.ToLower(strings.TrimSpace(value))

		switch prop {
		case "color":
			if a, ok := foregrounds[value]; ok {
				attrs = append(attrs, a)
			}
		case "background", "background-color":
			if a, ok := backgrounds[value]; ok {
				attrs = append(attrs, a)
			}
		case "font-weight":
			if n, err := strconv.Atoi(value); value == "bold" || err == nil && n >= 600 {
				attrs = append(attrs, color.Bold)
			}
		case "font-style":
			if value == "italic" {
				attrs = append(attrs, color.Italic)
			}
		case "text-decoration":
			if value == "underline" {
				attrs = append(attrs, color.Underline)
			}
		}
	}
	return attrs
}

// formatNumber renders numeric values and "NaN" for anything else.
func formatNumber(v any, integer bool) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		if integer {
			return strconv.FormatInt(int64(rv.Float()), 10)
		}
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return "NaN"
}

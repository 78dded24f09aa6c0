package core

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// TimestampLayout is the fixed UTC layout of Record.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is the normalized representation of one log event.
type Record struct {
	Level     Level          `json:"level"`
	LevelName string         `json:"levelName"`
	Timestamp string         `json:"timestamp"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Error     *ErrorInfo     `json:"error,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

// ErrorInfo is the normalized shape of an error passed as metadata
type ErrorInfo struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Payload is the classified form of a metadata value. Exactly one of Data
// and Error is set, or neither when no metadata was supplied. Build it with
// DataPayload, ErrorPayload or SplitMetadata.
type Payload struct {
	Data  map[string]any
	Error *ErrorInfo
}

// DataPayload wraps a plain metadata mapping.
func DataPayload(data map[string]any) Payload {
	return Payload{Data: data}
}

// ErrorPayload normalizes err into an ErrorInfo payload.
func ErrorPayload(err error) Payload {
	if err == nil {
		return Payload{}
	}
	return Payload{Error: &ErrorInfo{
		Name:    errorName(err),
		Message: err.Error(),
		Stack:   errorStack(err),
	}}
}

// SplitMetadata classifies a metadata value. nil yields an empty Payload,
// any error yields an error payload and every other value yields a data
// payload. Values that are not a map[string]any are decoded into one;
// values that cannot be represented as a mapping are kept under "value".
func SplitMetadata(metadata any) Payload {
	if isNil(metadata) {
		return Payload{}
	}
	switch m := metadata.(type) {
	case error:
		return ErrorPayload(m)
	case map[string]any:
		return DataPayload(m)
	default:
		return DataPayload(toMap(m))
	}
}

// toMap decodes v using its json tags, so keys match what encoding/json
// would produce for the same value.
func toMap(v any) map[string]any {
	out := make(map[string]any)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return map[string]any{"value": v}
	}
	if err := dec.Decode(v); err != nil {
		return map[string]any{"value": v}
	}
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// namer is implemented by errors that carry their own display name.
type namer interface {
	Name() string
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func errorName(err error) string {
	if n, ok := err.(namer); ok && n.Name() != "" {
		return n.Name()
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		if r, _ := utf8.DecodeRuneInString(name); unicode.IsUpper(r) {
			return name
		}
	}
	return "Error"
}

func errorStack(err error) string {
	var st stackTracer
	if !errors.As(err, &st) {
		return ""
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n")
}

// CoerceMessage converts an arbitrary message to a string. Strings pass
// through, everything else is JSON encoded. Values that cannot be encoded
// fall back to their default formatting. It never panics.
func CoerceMessage(value any) (msg string) {
	if s, ok := value.(string); ok {
		return s
	}
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("%T", value)
		}
	}()
	b, err := json.Marshal(value)
	if err == nil {
		return string(b)
	}
	var unsupported *json.UnsupportedValueError
	if errors.As(err, &unsupported) && strings.Contains(unsupported.Str, "cycle") {
		// fmt would recurse forever on a self-referencing map or slice
		return fmt.Sprintf("%T", value)
	}
	return fmt.Sprint(value)
}

// FormatTimestamp renders t in UTC with second precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

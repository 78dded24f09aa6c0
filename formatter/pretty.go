package formatter

import (
	"strings"

	"github.com/philipp01105/logplus/core"
)

const (
	timestampWeight = "font-weight:600"
	messageWeight   = "font-weight:500"
)

// PrettyFormatter renders records as a styled, human-readable template.
//
// The template alternates "%c" style and reset directives around the
// timestamp, level tag and message, followed by "%o" for data and
// "\n%o" for an error when present:
//
//	%c2025-01-01 00:00:00%c %c[INFO]  %c %chello%c %o \n%o
type PrettyFormatter struct{}

// NewPrettyFormatter creates a new pretty formatter
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{}
}

// Format builds the template and its positional arguments
func (f *PrettyFormatter) Format(record core.Record) Result {
	parts := make([]string, 3, 5)
	parts[0] = "%c" + record.Timestamp + "%c"
	parts[1] = "%c" + core.FormatLevelTag(record.LevelName) + "%c"
	parts[2] = "%c" + record.Message + "%c"

	args := make([]any, 6, 8)
	args[0] = timestampWeight
	args[1] = ""
	args[2] = core.StyleFor(record.Level)
	args[3] = ""
	args[4] = messageWeight
	args[5] = ""

	if record.Data != nil {
		parts = append(parts, "%o")
		args = append(args, record.Data)
	}
	if record.Error != nil {
		parts = append(parts, "\n%o")
		args = append(args, record.Error)
	}

	return Result{Text: strings.Join(parts, " "), Args: args}
}

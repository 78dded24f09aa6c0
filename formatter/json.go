package formatter

import "github.com/philipp01105/logplus/core"

// JSONFormatter hands the record through unchanged as Result.JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format wraps the record under Result.JSON
func (f *JSONFormatter) Format(record core.Record) Result {
	return Result{JSON: record}
}

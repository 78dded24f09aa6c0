package core

import (
	"strings"
	"unicode/utf8"
)

// LevelTagWidth is the width of a rendered level tag, brackets included.
const LevelTagWidth = 8

var levelStyles = map[Level]string{
	TraceLevel: "color:gray",
	DebugLevel: "color:#888",
	InfoLevel:  "color:#1e88e5",
	WarnLevel:  "color:#f9a825",
	ErrorLevel: "color:#e53935",
	FatalLevel: "background:#e53935;color:#fff;padding:0 4px;border-radius:2px",
}

// StyleFor returns the CSS-like presentation hint used by formatters for
// level. Unknown levels and SilentLevel have no style.
func StyleFor(level Level) string {
	return levelStyles[level]
}

// FormatLevelTag renders "[NAME]" padded with trailing spaces to
// LevelTagWidth so tags line up in monospaced output.
func FormatLevelTag(name string) string {
	tag := "[" + name + "]"
	if n := utf8.RuneCountInString(tag); n < LevelTagWidth {
		return tag + strings.Repeat(" ", LevelTagWidth-n)
	}
	return tag
}

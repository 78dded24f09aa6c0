// Package formatter turns a core.Record into renderable output.
//
// A Formatter is a pure function from record to Result. A Result carries
// up to two renditions: Text plus positional Args for sinks that understand
// printf-style directives (the console transport), and JSON for
// serialization-oriented sinks (the HTTP and writer transports). A
// formatter may fill either or both; transports default whatever is missing.
//
// Two formatters are built in. JSONFormatter hands the record through
// unchanged under Result.JSON. PrettyFormatter builds a "%c"-styled
// template with one style directive per segment, the same layout browser
// and terminal consoles use for coloured output.
//
// Payload serializes the JSON rendition (or the record itself) into a
// pooled buffer so network and file sinks share one encoding path.
package formatter

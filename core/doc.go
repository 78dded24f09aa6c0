// Package core defines the shared types used across logplus.
//
// It provides the Level type for severity gating, the Record type that
// represents a single normalized log event, and the pure helpers that turn
// arbitrary call-site input into a Record: CoerceMessage for the message,
// SplitMetadata for the optional metadata value and FormatTimestamp for the
// clock reading.
//
// A Record is a plain value. Loggers build exactly one per emitted call and
// hand the same value to the formatter and to every transport, so none of
// them may mutate the Data or Context maps it carries.
//
// Metadata is classified exactly once into a Payload, which holds either a
// data mapping or a normalized ErrorInfo, never both. Errors keep their
// github.com/pkg/errors stack trace when one is attached anywhere in the
// wrap chain.
package core

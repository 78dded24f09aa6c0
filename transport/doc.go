// Package transport provides the Transport interface and its built-in
// implementations for delivering formatted log records.
//
// A Transport receives the record and the formatter's Result for every
// emitted call. Transports must never let a failure reach the caller:
// each built-in transport recovers its own panics and swallows I/O errors,
// recording them in Stats instead.
//
// Built-in transports:
//
//   - ConsoleTransport picks a sink from a Console by level and prints the
//     formatted text, falling back to a flat "<timestamp> <tag><message>"
//     line when the sink panics.
//   - HTTPTransport POSTs the JSON payload on a background goroutine
//     (fire-and-forget) using an injectable RequestFunc.
//   - WriterTransport writes JSON lines to any io.Writer.
//   - ZapTransport forwards records into a *zap.Logger.
//
// Fanout dispatches one record to an ordered list of transports and
// isolates them from each other, so one panicking transport cannot stop
// the rest.
//
// A Console is a set of per-level sinks. PickConsole resolves it in a fixed
// order: the console injected by the caller, then the process-wide default
// set with SetDefaultConsole, then the terminal console captured when the
// package was initialized. The captured console always has sinks, so a
// sink is always available.
package transport

// Package logger is the public API of logplus. Most users only need to
// import this package.
//
// A Logger is immutable after construction. The level, formatter,
// transports, clock and context are resolved once by New (or the
// Builder) and never modified, so a Logger is safe for concurrent use
// without locking.
//
// Every emitting method takes a message of any type and optional
// metadata. The message is coerced to a string; the first metadata
// value becomes the record's error when it is an error and its data
// otherwise:
//
//	log := logger.New(logger.Options{})
//	log.Info("user login", map[string]any{"user": "alice"})
//	log.Error("payment failed", err)
//
// Records below the minimum level are dropped before the clock,
// formatter or any transport is touched. Emitted records are formatted
// once and handed to each transport in order; a panicking transport
// does not stop the others.
//
// Derived loggers share transports and add context or change the level:
//
//	reqLog := log.Child(map[string]any{"requestId": id})
//	verbose := log.WithLevel(logger.DebugLevel)
//
// The package initializes a default Logger (InfoLevel, pretty format to
// the console) in init(). The package-level functions Info, Error, etc.
// delegate to it.
package logger

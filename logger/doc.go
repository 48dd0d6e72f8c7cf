// Package logger is the public API of probelog. Most users only need to
// import this package.
//
// probelog is a leveled logging facility for code that instruments a host
// application and therefore must not interfere with the host's logging
// configuration, shutdown sequencing, or performance. It keeps no global
// state, installs no shutdown hooks, and performs no I/O of its own; all
// output goes through handlers the owner supplies at construction.
//
// A Logger is immutable after construction — the threshold and the handler
// set are fixed by the Builder and never modified, and the handler slice is
// defensively copied. This makes Logger inherently safe for concurrent use
// without any locking on its own state. Handlers are shared, externally
// owned resources; a handler that is not itself safe for concurrent use
// must not be given to loggers called from multiple goroutines.
//
//	log := logger.NewBuilder().
//	    WithHandlers(handler.NewWriterHandler(handler.WriterConfig{})).
//	    WithLevel(logger.Info).
//	    Build()
//
//	log.Warning("lock graph is growing fast")
//
// Threshold checks happen before any other work, so filtered-out messages
// cost only a single integer comparison. Admitted messages are delivered
// synchronously to every handler in registration order; the first handler
// error stops delivery of that message to later handlers.
package logger

// Package handler provides the Handler capability the Logger dispatches to,
// plus a small set of built-in implementations.
//
// A Handler accepts one admitted (level, message) pair per Publish call and
// performs the actual output side effect. The Logger holds non-owning
// references: it never closes, flushes, or locks around a handler, so a
// handler shared by concurrently used loggers must serialize its own side
// effects (WriterHandler does; a handler wrapping an already thread-safe
// sink like zap or slog gets this for free).
//
// Built-in handlers:
//
//   - WriterHandler writes "LEVEL: message" lines to any io.Writer
//     (default: stderr), one mutex-guarded Write per message.
//   - ZapHandler and SlogHandler forward messages into a host
//     application's existing zap core or slog logger, so instrumentation
//     output can ride the host's pipeline without reconfiguring it.
//   - MemoryHandler records pairs for inspection in tests.
//   - Discard drops everything.
//
// All delivery is synchronous on the calling goroutine.
package handler

package logger

import (
	"github.com/probelog/probelog/core"
	"github.com/probelog/probelog/handler"
)

// Logger dispatches messages to a fixed set of handlers after filtering by a
// fixed severity threshold (immutable).
type Logger struct {
	handlers  []handler.Handler
	threshold core.Level
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handlers  []handler.Handler
	threshold core.Level
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		threshold: core.Finest, // Default threshold admits every level
	}
}

// WithHandlers appends handlers in dispatch order
func (b *Builder) WithHandlers(handlers ...handler.Handler) *Builder {
	b.handlers = append(b.handlers, handlers...)
	return b
}

// WithLevel sets the threshold level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.threshold = level
	return b
}

// Build creates the Logger instance. The accumulated handler slice is copied
// so that neither further Builder use nor mutation of a slice the caller
// passed to WithHandlers can change the Logger.
func (b *Builder) Build() *Logger {
	handlers := make([]handler.Handler, len(b.handlers))
	copy(handlers, b.handlers)
	return &Logger{
		handlers:  handlers,
		threshold: b.threshold,
	}
}

// New creates a Logger with the default Finest threshold, dispatching to the
// given handlers in order. No handlers means every admitted message is a
// no-op.
func New(handlers ...handler.Handler) *Logger {
	return NewBuilder().WithHandlers(handlers...).Build()
}

// IsLoggable reports whether a message at the given level would be
// dispatched. Pure and safe for concurrent use.
func (l *Logger) IsLoggable(level core.Level) bool {
	return level.Enabled(l.threshold)
}

// Log dispatches a message at the given level. Messages below the threshold
// cost one comparison and invoke no handler. The first handler error stops
// the fan-out for this message and is returned, leaving later handlers
// uninvoked; the severity methods discard it.
func (l *Logger) Log(level core.Level, message string) error {
	if !l.IsLoggable(level) {
		return nil
	}
	return l.publish(level, message)
}

// publish fans the message out to every handler in registration order. The
// threshold check has already happened.
func (l *Logger) publish(level core.Level, message string) error {
	for _, h := range l.handlers {
		if err := h.Publish(level, message); err != nil {
			return err
		}
	}
	return nil
}

// Severe logs a message with level SEVERE
func (l *Logger) Severe(message string) {
	if !l.IsLoggable(core.Severe) {
		return
	}
	_ = l.publish(core.Severe, message)
}

// Warning logs a message with level WARNING
func (l *Logger) Warning(message string) {
	if !l.IsLoggable(core.Warning) {
		return
	}
	_ = l.publish(core.Warning, message)
}

// Info logs a message with level INFO
func (l *Logger) Info(message string) {
	if !l.IsLoggable(core.Info) {
		return
	}
	_ = l.publish(core.Info, message)
}

// Config logs a message with level CONFIG
func (l *Logger) Config(message string) {
	if !l.IsLoggable(core.Config) {
		return
	}
	_ = l.publish(core.Config, message)
}

// Fine logs a message with level FINE
func (l *Logger) Fine(message string) {
	if !l.IsLoggable(core.Fine) {
		return
	}
	_ = l.publish(core.Fine, message)
}

// Finer logs a message with level FINER
func (l *Logger) Finer(message string) {
	if !l.IsLoggable(core.Finer) {
		return
	}
	_ = l.publish(core.Finer, message)
}

// Finest logs a message with level FINEST
func (l *Logger) Finest(message string) {
	if !l.IsLoggable(core.Finest) {
		return
	}
	_ = l.publish(core.Finest, message)
}

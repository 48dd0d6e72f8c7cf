package handler

import "github.com/probelog/probelog/core"

// Handler defines the capability the Logger dispatches admitted messages to
type Handler interface {
	// Publish outputs a message that passed the Logger's threshold. The
	// Logger calls handlers in registration order and stops the fan-out for
	// the current message at the first non-nil error.
	Publish(level core.Level, message string) error
}

// Discard is a Handler that does nothing. Useful in tests and for wiring a
// logging concern that should stay silent.
var Discard Handler = discard{}

type discard struct{}

func (discard) Publish(core.Level, string) error { return nil }

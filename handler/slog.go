package handler

import (
	"context"
	"log/slog"

	"github.com/probelog/probelog/core"
)

// SlogHandler forwards published messages to a host-supplied *slog.Logger,
// the standard-library counterpart of ZapHandler.
type SlogHandler struct {
	logger *slog.Logger
}

// NewSlogHandler creates a handler forwarding into the given slog logger.
// A nil logger means slog.Default().
func NewSlogHandler(l *slog.Logger) *SlogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &SlogHandler{logger: l}
}

// Publish logs the message on the wrapped logger at the nearest slog level.
// The wrapped logger applies its own level gate on top of the probelog
// threshold that already admitted the message.
func (h *SlogHandler) Publish(level core.Level, message string) error {
	h.logger.Log(context.Background(), slogLevel(level), message)
	return nil
}

// slogLevel maps the seven probelog levels onto slog's ladder. The two
// finest trace levels sit below slog.LevelDebug so a host can still tell
// them apart from Fine.
func slogLevel(level core.Level) slog.Level {
	switch level {
	case core.Severe:
		return slog.LevelError
	case core.Warning:
		return slog.LevelWarn
	case core.Info, core.Config:
		return slog.LevelInfo
	case core.Fine:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}

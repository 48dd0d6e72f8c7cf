package handler

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/probelog/probelog/core"
)

// ZapHandler forwards published messages into a host-supplied zapcore.Core.
// This lets an instrumentation logger feed the host application's existing
// zap pipeline without touching the host's zap configuration.
type ZapHandler struct {
	core zapcore.Core
	name string
}

// NewZapHandler creates a handler writing into the given zap core. The name,
// if non-empty, becomes the LoggerName of every forwarded entry.
func NewZapHandler(zc zapcore.Core, name string) *ZapHandler {
	return &ZapHandler{core: zc, name: name}
}

// Publish converts the pair into a zapcore.Entry and writes it to the
// wrapped core. Messages below the core's own enabler are dropped silently;
// the host keeps the final say over what its pipeline emits.
func (h *ZapHandler) Publish(level core.Level, message string) error {
	lvl := zapLevel(level)
	if !h.core.Enabled(lvl) {
		return nil
	}
	return h.core.Write(zapcore.Entry{
		Level:      lvl,
		Time:       time.Now(),
		LoggerName: h.name,
		Message:    message,
	}, nil)
}

// Sync flushes the wrapped core.
func (h *ZapHandler) Sync() error {
	return h.core.Sync()
}

// zapLevel maps the seven probelog levels onto zap's ladder. Config is
// treated as informational; all three trace levels collapse to Debug.
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.Severe:
		return zapcore.ErrorLevel
	case core.Warning:
		return zapcore.WarnLevel
	case core.Info, core.Config:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

package handler

import (
	"io"
	"os"
	"sync"

	"github.com/probelog/probelog/core"
	"github.com/probelog/probelog/formatter"
)

// WriterHandler writes formatted log lines to an io.Writer
type WriterHandler struct {
	writer    io.Writer
	formatter formatter.Formatter
	mu        sync.Mutex
	buf       []byte
}

// WriterConfig holds configuration for a writer handler
type WriterConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter without timestamp)
	Formatter formatter.Formatter
}

// NewWriterHandler creates a new writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return &WriterHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		buf:       make([]byte, 0, 256),
	}
}

// Publish formats the message and writes it as a single Write call. The
// handler serializes its own writes, so one WriterHandler may be shared by
// loggers running on multiple goroutines.
func (h *WriterHandler) Publish(level core.Level, message string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf = h.formatter.AppendFormat(h.buf[:0], level, message)
	_, err := h.writer.Write(h.buf)
	return err
}

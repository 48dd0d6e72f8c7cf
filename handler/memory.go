package handler

import (
	"sync"

	"github.com/probelog/probelog/core"
)

// Record is one published (level, message) pair captured by a MemoryHandler.
type Record struct {
	Level   core.Level
	Message string
}

// MemoryHandler records published messages in memory. It is meant for tests
// and for callers that want to inspect what an instrumented component logged.
type MemoryHandler struct {
	mu      sync.Mutex
	records []Record

	// Err, when non-nil, is returned by every Publish call after the
	// message has been recorded. Tests use this to exercise the Logger's
	// abort-on-first-failure dispatch.
	Err error
}

// NewMemoryHandler creates an empty memory handler
func NewMemoryHandler() *MemoryHandler {
	return &MemoryHandler{}
}

// Publish records the pair and returns Err.
func (h *MemoryHandler) Publish(level core.Level, message string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, Record{Level: level, Message: message})
	return h.Err
}

// Records returns a copy of everything published so far, in publish order.
func (h *MemoryHandler) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Reset discards all recorded messages.
func (h *MemoryHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = h.records[:0]
}

package handler

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/probelog/probelog/core"
	"github.com/probelog/probelog/formatter"
)

func TestWriterHandler_Publish(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHandler(WriterConfig{Writer: &buf})

	if err := h.Publish(core.Warning, "low disk space"); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if got := buf.String(); got != "WARNING: low disk space\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestWriterHandler_CustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHandler(WriterConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{TimestampFormat: "2006"}),
	})

	if err := h.Publish(core.Info, "starting"); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if !strings.HasSuffix(buf.String(), " INFO: starting\n") {
		t.Errorf("Expected timestamped line, got: %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestWriterHandler_WriteError(t *testing.T) {
	h := NewWriterHandler(WriterConfig{Writer: failingWriter{}})

	if err := h.Publish(core.Severe, "boom"); err == nil {
		t.Error("Expected write error to surface from Publish")
	}
}

func TestWriterHandler_ConcurrentPublish(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHandler(WriterConfig{Writer: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = h.Publish(core.Fine, "concurrent line")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 400 {
		t.Fatalf("Expected 400 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if line != "FINE: concurrent line" {
			t.Fatalf("Interleaved or corrupted line: %q", line)
		}
	}
}

func TestMemoryHandler_RecordsInOrder(t *testing.T) {
	h := NewMemoryHandler()

	_ = h.Publish(core.Severe, "first")
	_ = h.Publish(core.Finest, "second")

	records := h.Records()
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0] != (Record{Level: core.Severe, Message: "first"}) {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
	if records[1] != (Record{Level: core.Finest, Message: "second"}) {
		t.Errorf("Unexpected second record: %+v", records[1])
	}

	h.Reset()
	if len(h.Records()) != 0 {
		t.Error("Reset did not discard records")
	}
}

func TestMemoryHandler_InjectedError(t *testing.T) {
	h := NewMemoryHandler()
	h.Err = errors.New("injected")

	if err := h.Publish(core.Info, "still recorded"); err == nil {
		t.Error("Expected injected error")
	}
	if len(h.Records()) != 1 {
		t.Error("Message should be recorded even when Err is set")
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Publish(core.Severe, "into the void"); err != nil {
		t.Errorf("Discard returned error: %v", err)
	}
}

func BenchmarkWriterHandler_Publish(b *testing.B) {
	h := NewWriterHandler(WriterConfig{Writer: &bytes.Buffer{}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Publish(core.Info, "benchmark message")
	}
}

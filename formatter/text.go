package formatter

import (
	"time"

	"github.com/probelog/probelog/core"
)

// TextFormatter formats log messages as single lines of human-readable text
type TextFormatter struct {
	Config
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format for a leading timestamp.
	// Empty means no timestamp is written.
	TimestampFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// pre-formatted level prefixes to avoid a second append per line
var levelPrefixes = [...]string{
	core.Severe:  "SEVERE: ",
	core.Warning: "WARNING: ",
	core.Info:    "INFO: ",
	core.Config:  "CONFIG: ",
	core.Fine:    "FINE: ",
	core.Finer:   "FINER: ",
	core.Finest:  "FINEST: ",
}

// AppendFormat appends "LEVEL: message\n" to dst, with an optional leading
// timestamp when TimestampFormat is set.
func (f *TextFormatter) AppendFormat(dst []byte, level core.Level, message string) []byte {
	if f.TimestampFormat != "" {
		dst = time.Now().AppendFormat(dst, f.TimestampFormat)
		dst = append(dst, ' ')
	}
	if level >= 0 && int(level) < len(levelPrefixes) {
		dst = append(dst, levelPrefixes[level]...)
	} else {
		dst = append(dst, "UNKNOWN: "...)
	}
	dst = append(dst, message...)
	dst = append(dst, '\n')
	return dst
}

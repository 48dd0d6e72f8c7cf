package formatter

import "github.com/probelog/probelog/core"

// Formatter defines the interface for log line formatters
type Formatter interface {
	// AppendFormat appends the formatted line for (level, message) to dst
	// and returns the extended slice.
	AppendFormat(dst []byte, level core.Level, message string) []byte
}

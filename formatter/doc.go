// Package formatter defines how (level, message) pairs are serialized
// into output lines.
//
// The Formatter interface is append-style: implementations extend a
// caller-provided byte slice, which lets handlers reuse one buffer across
// writes instead of allocating per message. TextFormatter pre-computes the
// "LEVEL: " prefix for each level so the common path is three appends.
package formatter

package core

import "strings"

// Level represents the severity of a log message. Lower ordinals are more
// severe: Severe is 0, Finest is 6.
type Level int8

const (
	// Severe for serious failures
	Severe Level = iota
	// Warning for potential problems
	Warning
	// Info for general informational messages
	Info
	// Config for static configuration messages
	Config
	// Fine for tracing information
	Fine
	// Finer for fairly detailed tracing
	Finer
	// Finest for highly detailed tracing
	Finest
)

// levelNames is the single source of truth for the level set. Declaration
// order here defines both the severity ordering and the listing order of
// LevelNames.
var levelNames = [...]string{
	Severe:  "SEVERE",
	Warning: "WARNING",
	Info:    "INFO",
	Config:  "CONFIG",
	Fine:    "FINE",
	Finer:   "FINER",
	Finest:  "FINEST",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Enabled reports whether a message at level l passes a threshold, i.e.
// whether l is at least as severe as the threshold.
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// ParseLevel converts a string to a Level. Matching is case-insensitive and
// exact; the second result is false when the string names no known level.
func ParseLevel(s string) (Level, bool) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), true
		}
	}
	return 0, false
}

// LevelNames returns all level names in severity order, joined with ", ".
// Intended for help and error text of callers that parse level strings.
func LevelNames() string {
	return strings.Join(levelNames[:], ", ")
}

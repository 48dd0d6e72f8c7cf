package logger

import "github.com/probelog/probelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	Severe  = core.Severe
	Warning = core.Warning
	Info    = core.Info
	Config  = core.Config
	Fine    = core.Fine
	Finer   = core.Finer
	Finest  = core.Finest
)

// ParseLevel converts a string to a Level, case-insensitively. The second
// result is false when the string names no known level.
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}

// LevelNames returns all level names in severity order, joined with ", ".
func LevelNames() string {
	return core.LevelNames()
}

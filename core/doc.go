// Package core defines the Level type shared across probelog.
//
// The seven levels follow the java.util.logging severity ladder, from
// Severe down to Finest, with the ordinal order doubling as the severity
// order: a level is admitted by a threshold when its ordinal is less than
// or equal to the threshold's. ParseLevel and LevelNames exist for
// callers (config loaders, CLI flags) that turn user-supplied text into
// a Level; parsing never fails with an error, it reports no-match via a
// second boolean result.
package core

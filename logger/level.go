package logger

import (
	"github.com/philipp01105/svclog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
)

// ErrInvalidLevel is matched by errors from ParseLevel and Builder.Build.
var ErrInvalidLevel = core.ErrInvalidLevel

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level represents the severity of a log record. Lower values are more verbose.
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for conditions that deserve attention
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// WarnLevel is an alias of WarningLevel.
const WarnLevel = WarningLevel

// ErrInvalidLevel is matched by every error returned from ParseLevel.
var ErrInvalidLevel = errors.New("invalid log level")

// InvalidLevelError reports a minimum level that is not one of
// ERROR, WARN, WARNING, INFO or DEBUG.
type InvalidLevelError struct {
	Value string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level '%s'", e.Value)
}

// Unwrap lets errors.Is(err, ErrInvalidLevel) succeed.
func (e *InvalidLevelError) Unwrap() error {
	return ErrInvalidLevel
}

// String returns the spelling used in the record's "level" field.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= ErrorLevel
}

// Enabled reports whether a call at level l passes a logger configured with min.
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch name := strings.ToUpper(s); name {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return InfoLevel, &InvalidLevelError{Value: name}
	}
}

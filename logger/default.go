package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/svclog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger: service named after the binary, INFO,
	// JSON lines to stdout.
	l, err := NewBuilder(filepath.Base(os.Args[0])).Build()
	if err != nil {
		panic(err)
	}
	defaultLogger = l
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. They call
// log directly so the caller resolves to the same depth as a method call.

// Debug logs a debug message using the default logger
func Debug(msg string) {
	l := Default()
	if core.DebugLevel < l.level {
		return
	}
	l.log(0, core.DebugLevel, core.Text(msg), nil)
}

// Info logs an info message using the default logger
func Info(msg string) {
	l := Default()
	if core.InfoLevel < l.level {
		return
	}
	l.log(0, core.InfoLevel, core.Text(msg), nil)
}

// Warning logs a warning message using the default logger
func Warning(msg string) {
	l := Default()
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Text(msg), nil)
}

// Warn is an alias of Warning.
func Warn(msg string) {
	l := Default()
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Text(msg), nil)
}

// Error logs an error message using the default logger
func Error(msg string) {
	l := Default()
	if core.ErrorLevel < l.level {
		return
	}
	l.log(0, core.ErrorLevel, core.Text(msg), nil)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	l := Default()
	if core.DebugLevel < l.level {
		return
	}
	l.log(0, core.DebugLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	l := Default()
	if core.InfoLevel < l.level {
		return
	}
	l.log(0, core.InfoLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	l := Default()
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	l := Default()
	if core.ErrorLevel < l.level {
		return
	}
	l.log(0, core.ErrorLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// InfoFields logs fields at info level using the default logger
func InfoFields(fields ...core.Field) {
	l := Default()
	if core.InfoLevel < l.level {
		return
	}
	l.log(0, core.InfoLevel, core.Fields(fields), nil)
}

// Build starts a Chain on the default logger
func Build(initial ...core.Field) *Chain {
	return Default().Build(initial...)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}

package logger

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/svclog/core"
)

// Chain accumulates fields across calls and emits them with every
// terminal level call. The accumulated fields are never copied or
// cleared: after a terminal call the Chain still holds them, and the next
// terminal call emits them again together with anything added since.
// Call Logger.Build again for an independent set of fields.
//
// A Chain is not safe for concurrent use; WithField mutates it in place.
type Chain struct {
	logger *Logger
	state  *core.Record
}

// Build starts a Chain seeded with initial.
func (l *Logger) Build(initial ...core.Field) *Chain {
	state := core.NewRecord(len(initial) + 4)
	state.Merge(initial)
	return &Chain{logger: l, state: state}
}

// WithField sets key to value and returns the same Chain.
func (c *Chain) WithField(key string, value interface{}) *Chain {
	c.state.Set(core.FieldOf(key, value))
	return c
}

// WithFields sets each field and returns the same Chain.
func (c *Chain) WithFields(fields ...core.Field) *Chain {
	c.state.Merge(fields)
	return c
}

// WithError sets "error" to err's text and "stack" to its stack trace.
// The stack comes from the outermost error in the chain created by
// github.com/pkg/errors; without one, "stack" is removed. A nil err
// sets an empty "error" and a nil pointer error sets "<nil>".
func (c *Chain) WithError(err error) *Chain {
	c.state.Set(Err(err))
	if stack, ok := StackTrace(err); ok {
		c.state.Set(String("stack", stack))
	} else {
		c.state.Delete("stack")
	}
	return c
}

// Fields returns a copy of the accumulated fields.
func (c *Chain) Fields() []core.Field {
	return c.state.Clone().Fields()
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// StackTrace returns the stack recorded by github.com/pkg/errors for the
// outermost error in err's chain that carries one.
// A StackTrace method that panics, as on a nil pointer, reports no stack.
func StackTrace(err error) (stack string, ok bool) {
	var st stackTracer
	if err == nil || !errors.As(err, &st) {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			stack, ok = "", false
		}
	}()
	return strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n"), true
}

// Debug logs a debug message with the accumulated fields
func (c *Chain) Debug(msg string) {
	if core.DebugLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.DebugLevel, core.Text(msg), c.state)
}

// Info logs an info message with the accumulated fields
func (c *Chain) Info(msg string) {
	if core.InfoLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.InfoLevel, core.Text(msg), c.state)
}

// Warning logs a warning message with the accumulated fields
func (c *Chain) Warning(msg string) {
	if core.WarningLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.WarningLevel, core.Text(msg), c.state)
}

// Warn is an alias of Warning.
func (c *Chain) Warn(msg string) {
	if core.WarningLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.WarningLevel, core.Text(msg), c.state)
}

// Error logs an error message with the accumulated fields
func (c *Chain) Error(msg string) {
	if core.ErrorLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.ErrorLevel, core.Text(msg), c.state)
}

// DebugFields logs fields at debug level on top of the accumulated fields.
func (c *Chain) DebugFields(fields ...core.Field) {
	if core.DebugLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.DebugLevel, core.Fields(fields), c.state)
}

// InfoFields logs fields at info level on top of the accumulated fields.
func (c *Chain) InfoFields(fields ...core.Field) {
	if core.InfoLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.InfoLevel, core.Fields(fields), c.state)
}

// WarningFields logs fields at warning level on top of the accumulated fields.
func (c *Chain) WarningFields(fields ...core.Field) {
	if core.WarningLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.WarningLevel, core.Fields(fields), c.state)
}

// WarnFields is an alias of WarningFields.
func (c *Chain) WarnFields(fields ...core.Field) {
	if core.WarningLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.WarningLevel, core.Fields(fields), c.state)
}

// ErrorFields logs fields at error level on top of the accumulated fields.
func (c *Chain) ErrorFields(fields ...core.Field) {
	if core.ErrorLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.ErrorLevel, core.Fields(fields), c.state)
}

// Debugf logs a formatted debug message with the accumulated fields
func (c *Chain) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.DebugLevel, core.Text(fmt.Sprintf(format, args...)), c.state)
}

// Infof logs a formatted info message with the accumulated fields
func (c *Chain) Infof(format string, args ...interface{}) {
	if core.InfoLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.InfoLevel, core.Text(fmt.Sprintf(format, args...)), c.state)
}

// Warningf logs a formatted warning message with the accumulated fields
func (c *Chain) Warningf(format string, args ...interface{}) {
	if core.WarningLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.WarningLevel, core.Text(fmt.Sprintf(format, args...)), c.state)
}

// Warnf is an alias of Warningf.
func (c *Chain) Warnf(format string, args ...interface{}) {
	if core.WarningLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.WarningLevel, core.Text(fmt.Sprintf(format, args...)), c.state)
}

// Errorf logs a formatted error message with the accumulated fields
func (c *Chain) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < c.logger.level {
		return
	}
	c.logger.log(0, core.ErrorLevel, core.Text(fmt.Sprintf(format, args...)), c.state)
}

package logger

import (
	"fmt"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/formatter"
	"github.com/philipp01105/svclog/handler"
)

// DefaultCallerOffset is the number of frames between the caller resolver's
// caller and user code: the internal log function and the public method
// the user called. Every public entry point reaches the resolver at this
// depth.
const DefaultCallerOffset = 2

// config is frozen by Builder.Build and never modified afterwards.
type config struct {
	callerOffset  int
	stringify     bool
	sink          core.Sink
	now           core.NowFunc
	resolveCaller core.CallerResolver
	json          *formatter.JSONFormatter
}

// Logger emits level-gated structured records for one service.
// It is immutable after construction and safe for concurrent use as long
// as its sink is.
type Logger struct {
	serviceName string
	level       core.Level
	fields      []core.Field
	cfg         *config
	handler     handler.Handler
}

// New creates a Logger for serviceName that emits calls at minLevel or
// louder, writing JSON lines to stdout.
func New(serviceName, minLevel string) (*Logger, error) {
	return NewBuilder(serviceName).WithLevel(minLevel).Build()
}

// With creates a new Logger with additional fields (immutable operation).
// The fields follow the caller field in every record, before chained and
// payload fields.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		serviceName: l.serviceName,
		level:       l.level,
		fields:      newFields,
		cfg:         l.cfg,
		handler:     l.handler,
	}
}

// ServiceName returns the service name written to every record.
func (l *Logger) ServiceName() string {
	return l.serviceName
}

// Level returns the minimum level the logger emits.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether a call at level would be emitted. Levels outside
// DebugLevel..ErrorLevel are never emitted.
func (l *Logger) Enabled(level Level) bool {
	return level.Valid() && level.Enabled(l.level)
}

// Log emits p at level. A level outside DebugLevel..ErrorLevel is dropped.
func (l *Logger) Log(level Level, p Payload) {
	if !l.Enabled(level) {
		return
	}
	l.log(0, level, p, nil)
}

// log resolves the caller and emits. skip counts frames added between the
// public entry point and log beyond the default shape.
func (l *Logger) log(skip int, level core.Level, p core.Payload, extra *core.Record) {
	caller, ok := l.cfg.resolveCaller(l.cfg.callerOffset + skip)
	l.emit(level, p, extra, caller, ok)
}

// emit assembles the record and hands it to the sink. Field precedence,
// lowest first: level, serviceName, time, caller, logger fields, extra,
// payload. A later field with an existing key replaces the value in place.
func (l *Logger) emit(level core.Level, p core.Payload, extra *core.Record, caller string, hasCaller bool) {
	n := 5 + len(l.fields)
	if extra != nil {
		n += extra.Len()
	}
	if fields, ok := p.(core.Fields); ok {
		n += len(fields)
	}

	rec := core.NewRecord(n)
	rec.Set(core.Field{Key: core.LevelKey, Type: core.StringType, Str: level.String()})
	rec.Set(core.Field{Key: core.ServiceNameKey, Type: core.StringType, Str: l.serviceName})
	rec.Set(core.TimeField(core.TimeKey, l.cfg.now()))
	if hasCaller {
		rec.Set(core.Field{Key: core.CallerKey, Type: core.StringType, Str: caller})
	}
	rec.Merge(l.fields)
	if extra != nil {
		rec.Merge(extra.Fields())
	}

	switch p := p.(type) {
	case core.Text:
		rec.Set(core.Field{Key: core.MessageKey, Type: core.StringType, Str: string(p)})
	case core.Fields:
		rec.Merge(p)
	}

	if l.cfg.stringify {
		l.cfg.sink(core.Line{Level: level, Text: l.cfg.json.FormatString(rec)})
		return
	}
	l.cfg.sink(core.Line{Level: level, Record: rec})
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(0, core.DebugLevel, core.Text(msg), nil)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(0, core.InfoLevel, core.Text(msg), nil)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Text(msg), nil)
}

// Warn is an alias of Warning.
func (l *Logger) Warn(msg string) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Text(msg), nil)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(0, core.ErrorLevel, core.Text(msg), nil)
}

// DebugFields logs fields at debug level, spread into the record.
func (l *Logger) DebugFields(fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(0, core.DebugLevel, core.Fields(fields), nil)
}

// InfoFields logs fields at info level, spread into the record.
func (l *Logger) InfoFields(fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(0, core.InfoLevel, core.Fields(fields), nil)
}

// WarningFields logs fields at warning level, spread into the record.
func (l *Logger) WarningFields(fields ...core.Field) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Fields(fields), nil)
}

// WarnFields is an alias of WarningFields.
func (l *Logger) WarnFields(fields ...core.Field) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Fields(fields), nil)
}

// ErrorFields logs fields at error level, spread into the record.
func (l *Logger) ErrorFields(fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(0, core.ErrorLevel, core.Fields(fields), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(0, core.DebugLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(0, core.InfoLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// Warnf is an alias of Warningf.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(0, core.WarningLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(0, core.ErrorLevel, core.Text(fmt.Sprintf(format, args...)), nil)
}

// Close closes the handler installed with Builder.WithHandler, if any.
// A plain sink is left alone.
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}

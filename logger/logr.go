package logger

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/philipp01105/svclog/core"
)

var (
	_ logr.LogSink          = (*LogSink)(nil)
	_ logr.CallDepthLogSink = (*LogSink)(nil)
)

// LogSink implements logr.LogSink on top of a Logger.
//
// V(0) maps to info and every higher verbosity to debug. Records carry
// "msg", then "logger" when a name is set, then "error" for Error calls,
// then WithValues pairs and call pairs in order.
type LogSink struct {
	logger    *Logger
	name      string
	values    []core.Field
	callDepth int
}

// NewLogSink creates a logr.LogSink writing through l.
func NewLogSink(l *Logger) *LogSink {
	return &LogSink{logger: l}
}

// NewLogr returns a logr.Logger writing through l.
func NewLogr(l *Logger) logr.Logger {
	return logr.New(NewLogSink(l))
}

// Init records the call depth logr adds between user code and the sink.
func (s *LogSink) Init(info logr.RuntimeInfo) {
	s.callDepth = info.CallDepth
}

// Enabled reports whether a V-level would be emitted.
func (s *LogSink) Enabled(level int) bool {
	return s.logger.Enabled(verbosityToCore(level))
}

// Info logs a non-error message with key/value pairs.
func (s *LogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	lvl := verbosityToCore(level)
	if !s.logger.Enabled(lvl) {
		return
	}
	s.logger.log(s.callDepth, lvl, s.payload(msg, nil, keysAndValues), nil)
}

// Error logs an error at error level with key/value pairs.
func (s *LogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if !s.logger.Enabled(core.ErrorLevel) {
		return
	}
	s.logger.log(s.callDepth, core.ErrorLevel, s.payload(msg, err, keysAndValues), nil)
}

// WithValues returns a sink that adds keysAndValues to every record.
func (s *LogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	c := s.clone()
	c.values = appendKeysAndValues(c.values, keysAndValues)
	return c
}

// WithName returns a sink whose "logger" field has name appended.
func (s *LogSink) WithName(name string) logr.LogSink {
	c := s.clone()
	if c.name == "" {
		c.name = name
	} else {
		c.name = c.name + "/" + name
	}
	return c
}

// WithCallDepth returns a sink that skips depth more frames when
// resolving the caller.
func (s *LogSink) WithCallDepth(depth int) logr.LogSink {
	c := s.clone()
	c.callDepth += depth
	return c
}

func (s *LogSink) clone() *LogSink {
	c := *s
	c.values = make([]core.Field, len(s.values))
	copy(c.values, s.values)
	return &c
}

func (s *LogSink) payload(msg string, err error, keysAndValues []interface{}) core.Fields {
	fields := make(core.Fields, 0, 3+len(s.values)+len(keysAndValues)/2)
	fields = append(fields, core.Field{Key: core.MessageKey, Type: core.StringType, Str: msg})
	if s.name != "" {
		fields = append(fields, core.Field{Key: "logger", Type: core.StringType, Str: s.name})
	}
	if err != nil {
		fields = append(fields, Err(err))
	}
	fields = append(fields, s.values...)
	return appendKeysAndValues(fields, keysAndValues)
}

// verbosityToCore maps logr V-levels onto core levels.
func verbosityToCore(level int) core.Level {
	if level > 0 {
		return core.DebugLevel
	}
	return core.InfoLevel
}

func appendKeysAndValues(fields []core.Field, keysAndValues []interface{}) []core.Field {
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		if i+1 >= len(keysAndValues) {
			fields = append(fields, core.FieldOf(key, "(MISSING)"))
			break
		}
		fields = append(fields, core.FieldOf(key, keysAndValues[i+1]))
	}
	return fields
}

// Package zaphandler forwards log lines into a zap.Logger, so a service
// that already owns a zap pipeline can keep its encoders and outputs.
//
// The handler wants structured lines: logger.Builder turns stringify off
// for it unless WithStringify was called. With stringify on, the whole
// JSON line becomes the zap message.
package zaphandler

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/handler"
)

var _ handler.RecordHandler = (*Handler)(nil)

// Handler writes lines to a zap.Logger. Structured lines become a zap
// entry whose message is the "msg" field and whose remaining fields,
// except "level", become zap fields in record order. Text lines are
// written as the message with no fields.
type Handler struct {
	logger *zap.Logger
}

// New returns a Handler writing to l.
func New(l *zap.Logger) *Handler {
	return &Handler{logger: l}
}

// Handle writes the line at the matching zap level.
func (h *Handler) Handle(line core.Line) error {
	lvl := Level(line.Level)
	if !line.Structured() {
		if ce := h.logger.Check(lvl, line.Text); ce != nil {
			ce.Write()
		}
		return nil
	}

	var msg string
	fields := make([]zap.Field, 0, line.Record.Len())
	for _, f := range line.Record.Fields() {
		switch f.Key {
		case core.LevelKey:
			continue
		case core.MessageKey:
			if f.Type == core.StringType {
				msg = f.Str
				continue
			}
		}
		fields = append(fields, Field(f))
	}

	if ce := h.logger.Check(lvl, msg); ce != nil {
		ce.Write(fields...)
	}
	return nil
}

// WantsRecords reports that the handler encodes records itself.
func (h *Handler) WantsRecords() bool {
	return true
}

// Close flushes the zap logger.
func (h *Handler) Close() error {
	return h.logger.Sync()
}

// Level maps a core.Level to the zapcore.Level of the same severity.
func Level(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Field converts a core.Field to a zap.Field keeping its type.
func Field(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType, core.TimeFullType:
		return zap.Time(f.Key, f.Time())
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	default:
		return zap.Any(f.Key, f.Value())
	}
}

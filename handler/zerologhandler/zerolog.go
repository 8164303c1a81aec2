// Package zerologhandler forwards log lines into a zerolog.Logger.
//
// The handler wants structured lines: logger.Builder turns stringify off
// for it unless WithStringify was called.
package zerologhandler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/handler"
)

var _ handler.RecordHandler = (*Handler)(nil)

// Handler writes lines to a zerolog.Logger. Structured lines become an
// event whose message is the "msg" field; the remaining fields, except
// "level", are added in record order. Text lines are sent as the message.
type Handler struct {
	logger zerolog.Logger
}

// New returns a Handler writing to l.
func New(l zerolog.Logger) *Handler {
	return &Handler{logger: l}
}

// Handle writes the line at the matching zerolog level.
func (h *Handler) Handle(line core.Line) error {
	// NB: WithLevel returns a nil event when the level is disabled; every
	// method on a nil *zerolog.Event is a no-op.
	event := h.logger.WithLevel(Level(line.Level))
	if !line.Structured() {
		event.Msg(line.Text)
		return nil
	}

	var msg string
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
		event = addField(event, f)
	}
	event.Msg(msg)
	return nil
}

// WantsRecords reports that the handler encodes records itself.
func (h *Handler) WantsRecords() bool {
	return true
}

// Close is a no-op; zerolog writes synchronously.
func (h *Handler) Close() error {
	return nil
}

// Level maps a core.Level to the zerolog.Level of the same severity.
func Level(l core.Level) zerolog.Level {
	switch l {
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarningLevel:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func addField(event *zerolog.Event, f core.Field) *zerolog.Event {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return event.Str(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return event.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return event.Float64(f.Key, f.Float64)
	case core.BoolType:
		return event.Bool(f.Key, f.Int64 == 1)
	case core.TimeType, core.TimeFullType:
		return event.Time(f.Key, f.Time())
	case core.DurationType:
		return event.Dur(f.Key, time.Duration(f.Int64))
	default:
		return event.Interface(f.Key, f.Any)
	}
}

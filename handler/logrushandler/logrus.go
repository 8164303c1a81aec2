// Package logrushandler forwards log lines into a logrus.Logger.
//
// The handler wants structured lines: logger.Builder turns stringify off
// for it unless WithStringify was called.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/handler"
)

var _ handler.RecordHandler = (*Handler)(nil)

// Handler writes lines to a logrus.Logger. Structured lines become an
// entry whose message is the "msg" field and whose remaining fields,
// except "level", become logrus.Fields. logrus orders fields itself.
// Text lines are sent as the message.
type Handler struct {
	logger *logrus.Logger
}

// New returns a Handler writing to l.
func New(l *logrus.Logger) *Handler {
	return &Handler{logger: l}
}

// Handle writes the line at the matching logrus level.
func (h *Handler) Handle(line core.Line) error {
	lvl := Level(line.Level)
	if !h.logger.IsLevelEnabled(lvl) {
		return nil
	}
	if !line.Structured() {
		h.logger.Log(lvl, line.Text)
		return nil
	}

	var msg string
	fields := make(logrus.Fields, line.Record.Len())
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
		fields[f.Key] = f.Value()
	}
	h.logger.WithFields(fields).Log(lvl, msg)
	return nil
}

// WantsRecords reports that the handler encodes records itself.
func (h *Handler) WantsRecords() bool {
	return true
}

// Close is a no-op; the logrus output belongs to the caller.
func (h *Handler) Close() error {
	return nil
}

// Level maps a core.Level to the logrus.Level of the same severity.
func Level(l core.Level) logrus.Level {
	switch l {
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarningLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

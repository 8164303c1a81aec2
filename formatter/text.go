package formatter

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/philipp01105/svclog/core"
)

// TextFormatter formats records as human-readable text:
//
//	2026-01-15T12:00:00Z [INFO] svc [pkg/file.go:12] message key=value
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	f.formatToBuffer(rec, buf)
}

// formatToBuffer writes the reserved fields in a fixed layout, then the
// remaining fields as key=value pairs.
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	var level, service, caller, msg string
	for _, field := range rec.Fields() {
		switch field.Key {
		case core.TimeKey:
			if field.Type == core.TimeType || field.Type == core.TimeFullType {
				buf.Write(field.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
			} else {
				buf.WriteString(field.StringValue())
			}
		case core.LevelKey:
			level = field.StringValue()
		case core.ServiceNameKey:
			service = field.StringValue()
		case core.CallerKey:
			caller = field.StringValue()
		case core.MessageKey:
			msg = field.StringValue()
		}
	}

	buf.WriteString(" [")
	buf.WriteString(strings.ToUpper(level))
	buf.WriteString("] ")
	if service != "" {
		buf.WriteString(service)
		buf.WriteByte(' ')
	}
	if f.IncludeCaller && caller != "" {
		buf.WriteByte('[')
		buf.WriteString(caller)
		buf.WriteString("] ")
	}
	buf.WriteString(msg)

	for _, field := range rec.Fields() {
		switch field.Key {
		case core.TimeKey, core.LevelKey, core.ServiceNameKey, core.CallerKey, core.MessageKey:
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
}

package handler

import (
	"bytes"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/formatter"
)

// AppendLine writes line followed by a newline. Text lines are written
// verbatim; structured lines are rendered with f.
func AppendLine(buf *bytes.Buffer, line core.Line, f formatter.BufferFormatter) {
	if line.Structured() {
		f.FormatRecord(line.Record, buf)
	} else {
		buf.WriteString(line.Text)
	}
	buf.WriteByte('\n')
}

// DefaultFormatter renders structured lines when a handler is configured
// without a formatter.
func DefaultFormatter() formatter.BufferFormatter {
	return formatter.NewJSONFormatter(formatter.Config{})
}

// BufferFormatterOf returns f as a BufferFormatter, falling back to
// DefaultFormatter for nil or formatters that only implement Format.
func BufferFormatterOf(f formatter.Formatter) formatter.BufferFormatter {
	if bf, ok := f.(formatter.BufferFormatter); ok {
		return bf
	}
	if f == nil {
		return DefaultFormatter()
	}
	return formatAdapter{f}
}

type formatAdapter struct {
	f formatter.Formatter
}

func (a formatAdapter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	data, err := a.f.Format(rec)
	if err != nil {
		buf.WriteString(err.Error())
		return
	}
	buf.Write(data)
}

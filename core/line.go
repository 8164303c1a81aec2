package core

import "time"

// Line is what a Sink receives for one emitted log call. Text holds the
// serialized record when the logger stringifies its output; otherwise
// Record holds the structured record. Exactly one of them is set.
type Line struct {
	Level  Level
	Text   string
	Record *Record
}

// Structured reports whether the line carries a Record instead of Text.
func (l Line) Structured() bool {
	return l.Record != nil
}

// Sink consumes finished log lines. A logger calls its sink exactly once
// per emitted record, synchronously. Panics raised by a sink propagate to
// the caller of the log method.
type Sink func(Line)

// NowFunc returns the timestamp recorded in the "time" field.
type NowFunc func() time.Time

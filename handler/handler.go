package handler

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipp01105/svclog/core"
)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("handler closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle writes one finished log line
	Handle(line core.Line) error

	// Close closes the handler and releases resources
	Close() error
}

// RecordHandler is implemented by handlers that encode records
// themselves. A Logger built with one receives structured lines unless
// stringify was set explicitly; a pre-rendered JSON line would otherwise
// be encoded a second time as the message.
type RecordHandler interface {
	Handler
	WantsRecords() bool
}

// ErrorFunc receives errors returned by a Handler used as a core.Sink.
type ErrorFunc func(err error)

// errorOutput is where DefaultErrorFunc reports; tests replace it.
var errorOutput io.Writer = os.Stderr

// DefaultErrorFunc reports handler failures on stderr, the way zap
// reports its own internal errors on ErrorOutput.
func DefaultErrorFunc(err error) {
	fmt.Fprintf(errorOutput, "svclog: handler error: %v\n", err)
}

// AsSink adapts h to a core.Sink. Errors returned by h are passed to
// onError; a nil onError means DefaultErrorFunc.
func AsSink(h Handler, onError ErrorFunc) core.Sink {
	if onError == nil {
		onError = DefaultErrorFunc
	}
	return func(line core.Line) {
		if err := h.Handle(line); err != nil {
			onError(err)
		}
	}
}

package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/svclog/core"
)

// MultiHandler sends each line to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle sends the line to every child, in order. A failing child does
// not stop the others; all errors are combined.
func (h *MultiHandler) Handle(line core.Line) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(line))
	}
	return err
}

// WantsRecords reports whether any child is a RecordHandler that wants
// structured lines. Children that render text format records with their
// own formatter, so they accept either kind.
func (h *MultiHandler) WantsRecords() bool {
	for _, child := range h.handlers {
		if rh, ok := child.(RecordHandler); ok && rh.WantsRecords() {
			return true
		}
	}
	return false
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}

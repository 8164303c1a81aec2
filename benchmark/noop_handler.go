package benchmark

import (
	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/handler"
)

// noopHandler drops every line after touching it, isolating record
// construction from I/O.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(line core.Line) error {
	_ = len(line.Text)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

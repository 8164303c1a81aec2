package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/formatter"
	"github.com/philipp01105/svclog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter renders structured lines (default: JSONFormatter). Text
	// lines are written as they are.
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, contended callers format into a pooled buffer and write
	// without taking the handler lock. Automatically detected for
	// io.Discard and *os.File.
	ConcurrentWriter bool
}

// ConsoleHandler writes one line per log call to an io.Writer.
type ConsoleHandler struct {
	writer         io.Writer
	formatter      formatter.BufferFormatter
	concurrentSafe bool
	stats          *handler.Stats
	mu             sync.Mutex // protects syncBuf and serializes writes to writer
	syncBuf        bytes.Buffer
	bufPool        sync.Pool
	closed         chan struct{}
	closeOnce      sync.Once
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      handler.BufferFormatterOf(cfg.Formatter),
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
		closed:         make(chan struct{}),
	}
	h.syncBuf.Grow(256)
	h.bufPool = sync.Pool{
		New: func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(256)
			return b
		},
	}
	return h
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Handle writes the line followed by a newline.
// Uncontended callers use the handler-owned buffer. Contended callers on a
// concurrent-safe writer format into a pooled buffer and write without
// waiting for the lock.
func (h *ConsoleHandler) Handle(line core.Line) error {
	select {
	case <-h.closed:
		h.stats.IncrementFailed(line.Level)
		return handler.ErrClosed
	default:
	}

	if h.mu.TryLock() {
		h.syncBuf.Reset()
		handler.AppendLine(&h.syncBuf, line, h.formatter)
		_, err := h.writer.Write(h.syncBuf.Bytes())
		h.mu.Unlock()
		h.stats.Record(line.Level, err)
		return err
	}

	buf := h.bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	handler.AppendLine(buf, line, h.formatter)
	var err error
	if h.concurrentSafe {
		_, err = h.writer.Write(buf.Bytes())
	} else {
		h.mu.Lock()
		_, err = h.writer.Write(buf.Bytes())
		h.mu.Unlock()
	}
	h.bufPool.Put(buf)
	h.stats.Record(line.Level, err)
	return err
}

// Stats returns the handler's counters.
func (h *ConsoleHandler) Stats() *handler.Stats {
	return h.stats
}

// Close marks the handler closed. The writer is not closed; it belongs to
// the caller.
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() { close(h.closed) })
	return nil
}

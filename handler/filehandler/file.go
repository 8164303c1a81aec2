package filehandler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/formatter"
	"github.com/philipp01105/svclog/handler"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the file to append to. Missing parent directories are created.
	Filename string
	// Formatter renders structured lines (default: JSONFormatter)
	Formatter formatter.Formatter
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
}

// FileHandler appends one line per log call to a file. Every Handle call
// is a single write to the file; nothing is buffered in the handler.
type FileHandler struct {
	filename  string
	file      *os.File
	formatter formatter.BufferFormatter
	mu        sync.Mutex
	syncBuf   bytes.Buffer
	stats     *handler.Stats
	closed    bool
}

// NewFileHandler opens cfg.Filename for appending.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filehandler: empty filename")
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0o644
	}

	if dir := filepath.Dir(cfg.Filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("filehandler: create directory: %w", err)
		}
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("filehandler: open %s: %w", cfg.Filename, err)
	}

	return &FileHandler{
		filename:  cfg.Filename,
		file:      file,
		formatter: handler.BufferFormatterOf(cfg.Formatter),
		stats:     handler.NewStats(),
	}, nil
}

// Handle appends the line followed by a newline.
func (h *FileHandler) Handle(line core.Line) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		h.stats.IncrementFailed(line.Level)
		return handler.ErrClosed
	}
	h.syncBuf.Reset()
	handler.AppendLine(&h.syncBuf, line, h.formatter)
	_, err := h.file.Write(h.syncBuf.Bytes())
	h.mu.Unlock()

	h.stats.Record(line.Level, err)
	return err
}

// Filename returns the path the handler appends to.
func (h *FileHandler) Filename() string {
	return h.filename
}

// Stats returns the handler's counters.
func (h *FileHandler) Stats() *handler.Stats {
	return h.stats
}

// Close closes the underlying file. Subsequent calls are no-ops.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	return h.file.Close()
}

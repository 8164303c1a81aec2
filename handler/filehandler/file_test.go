package filehandler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/formatter"
	"github.com/philipp01105/svclog/handler"
)

func TestFileHandler_Appends(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "test.log")

	h, err := NewFileHandler(FileConfig{Filename: filename})
	require.NoError(t, err)
	require.Equal(t, filename, h.Filename())

	require.NoError(t, h.Handle(core.Line{Level: core.InfoLevel, Text: `{"msg":"first"}`}))
	require.NoError(t, h.Close())

	// Reopening appends rather than truncating.
	h, err = NewFileHandler(FileConfig{
		Filename:  filename,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	require.NoError(t, err)
	defer h.Close()

	rec := core.NewRecord(2)
	rec.Set(core.FieldOf(core.LevelKey, "error"))
	rec.Set(core.FieldOf(core.MessageKey, "second"))
	require.NoError(t, h.Handle(core.Line{Level: core.ErrorLevel, Record: rec}))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Equal(t, "{\"msg\":\"first\"}\n [ERROR] second\n", string(data))
	require.Equal(t, uint64(1), h.Stats().GetProcessed())
}

func TestFileHandler_Closed(t *testing.T) {
	h, err := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	require.ErrorIs(t, h.Handle(core.Line{Text: "x"}), handler.ErrClosed)
}

func TestFileHandler_InvalidConfig(t *testing.T) {
	_, err := NewFileHandler(FileConfig{})
	require.Error(t, err)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, err = NewFileHandler(FileConfig{Filename: filepath.Join(blocker, "sub", "x.log")})
	require.Error(t, err)
}

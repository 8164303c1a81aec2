package zerologhandler_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/handler/zerologhandler"
	"github.com/philipp01105/svclog/logger"
)

func TestHandler_StructuredLine(t *testing.T) {
	var buf bytes.Buffer
	h := zerologhandler.New(zerolog.New(&buf))

	rec := core.NewRecord(5)
	rec.Set(core.FieldOf(core.LevelKey, "error"))
	rec.Set(core.FieldOf(core.ServiceNameKey, "svc"))
	rec.Set(core.FieldOf(core.MessageKey, "failed"))
	rec.Set(core.FieldOf("attempt", 2))
	rec.Set(core.FieldOf("tags", []string{"a"}))

	require.NoError(t, h.Handle(core.Line{Level: core.ErrorLevel, Record: rec}))
	require.Equal(t,
		`{"level":"error","serviceName":"svc","attempt":2,"tags":["a"],"message":"failed"}`+"\n",
		buf.String())
}

func TestHandler_TextLine(t *testing.T) {
	var buf bytes.Buffer
	h := zerologhandler.New(zerolog.New(&buf))

	require.NoError(t, h.Handle(core.Line{Level: core.WarningLevel, Text: "plain"}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "warn", decoded["level"])
	require.Equal(t, "plain", decoded["message"])
	require.NoError(t, h.Close())
}

func TestHandler_DisabledLevel(t *testing.T) {
	var buf bytes.Buffer
	h := zerologhandler.New(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	rec := core.NewRecord(1)
	rec.Set(core.FieldOf(core.MessageKey, "quiet"))
	require.NoError(t, h.Handle(core.Line{Level: core.DebugLevel, Record: rec}))
	require.Zero(t, buf.Len())
}

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, zerologhandler.Level(core.DebugLevel))
	require.Equal(t, zerolog.WarnLevel, zerologhandler.Level(core.WarnLevel))
	require.Equal(t, zerolog.ErrorLevel, zerologhandler.Level(core.ErrorLevel))
}

func TestHandler_BuilderSendsRecords(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewBuilder("svc").
		WithHandler(zerologhandler.New(zerolog.New(&buf))).
		WithCallerResolver(func(int) (string, bool) { return "", false }).
		WithClock(func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }).
		Build()
	require.NoError(t, err)

	l.Warn("slow")
	require.Equal(t,
		`{"level":"warn","serviceName":"svc","time":"2020-01-01T00:00:00Z","message":"slow"}`+"\n",
		buf.String())
}

package formatter

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/svclog/core"
)

var testTime = time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC)

func newTestRecord(fields ...core.Field) *core.Record {
	rec := core.NewRecord(8)
	rec.Set(core.FieldOf(core.LevelKey, "info"))
	rec.Set(core.FieldOf(core.ServiceNameKey, "svc"))
	rec.Set(core.FieldOf(core.TimeKey, testTime))
	rec.Set(core.FieldOf(core.CallerKey, "pkg/file.go:12"))
	rec.Merge(fields)
	return rec
}

func TestJSONFormatter_KeyOrder(t *testing.T) {
	f := NewJSONFormatter(Config{})

	out, err := f.Format(newTestRecord(core.FieldOf(core.MessageKey, "test")))
	require.NoError(t, err)
	require.Equal(t,
		`{"level":"info","serviceName":"svc","time":"2026-02-18T13:00:00Z","caller":"pkg/file.go:12","msg":"test"}`,
		string(out))
}

func TestJSONFormatter_ValueTypes(t *testing.T) {
	f := NewJSONFormatter(Config{})
	rec := core.NewRecord(8)
	rec.Merge([]core.Field{
		core.FieldOf("s", "a\"b\n"),
		core.FieldOf("i", 42),
		core.FieldOf("f", 3.5),
		core.FieldOf("b", true),
		core.FieldOf("d", time.Second),
		core.FieldOf("any", map[string]int{"x": 1}),
		core.FieldOf("list", []string{"a", "b"}),
	})

	out := f.FormatString(rec)
	require.Equal(t, `{"s":"a\"b\n","i":42,"f":3.5,"b":true,"d":1000000000,"any":{"x":1},"list":["a","b"]}`, out)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, "a\"b\n", decoded["s"])
}

func TestJSONFormatter_UnencodableValue(t *testing.T) {
	f := NewJSONFormatter(Config{})
	rec := core.NewRecord(1)
	rec.Set(core.FieldOf("bad", math.Inf(1)))
	rec.Set(core.Field{Key: "ch", Type: core.AnyType, Any: make(chan int)})

	out := f.FormatString(rec)
	require.True(t, json.Valid([]byte(out)), out)
	require.Contains(t, out, `"bad":"+Inf"`)
	require.Contains(t, out, `"ch":"json: unsupported type: chan int"`)
}

func TestJSONFormatter_FormatTo(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(Config{})

	require.NoError(t, f.FormatTo(newTestRecord(), &buf))
	require.True(t, json.Valid(buf.Bytes()))
	require.False(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	result, err := f.Format(newTestRecord(core.FieldOf(core.MessageKey, "test message")))
	require.NoError(t, err)

	output := string(result)
	require.True(t, strings.HasPrefix(output, "2026-02-18T13:00:00Z [INFO] svc "), output)
	require.Contains(t, output, "test message")
	require.NotContains(t, output, "pkg/file.go")
}

func TestTextFormatter_WithCallerAndFields(t *testing.T) {
	f := NewTextFormatter(Config{IncludeCaller: true})

	var buf bytes.Buffer
	f.FormatRecord(newTestRecord(
		core.FieldOf(core.MessageKey, "test"),
		core.FieldOf("key1", "value1"),
		core.FieldOf("key2", 42),
	), &buf)

	output := buf.String()
	require.Contains(t, output, "[pkg/file.go:12] test")
	require.True(t, strings.HasSuffix(output, "key1=value1 key2=42"), output)
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	rec := newTestRecord(core.FieldOf(core.MessageKey, "bench"), core.FieldOf("n", 1))
	var buf bytes.Buffer

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatRecord(rec, &buf)
	}
}

func TestJSONFormatter_InvalidUTF8(t *testing.T) {
	f := NewJSONFormatter(Config{})
	rec := core.NewRecord(3)
	rec.Merge([]core.Field{
		core.FieldOf("bad", "bad\xffbyte"),
		core.FieldOf("cut\xe2\x82", "ok"),
		core.FieldOf("valid", "héllo €\x01"),
	})

	out := f.FormatString(rec)
	require.Equal(t, `{"bad":"bad\ufffdbyte","cut\ufffd\ufffd":"ok","valid":"héllo €\u0001"}`, out)
	require.True(t, utf8.ValidString(out))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, "bad�byte", decoded["bad"])
}

func TestFormatters_TimeOutsideNanosecondRange(t *testing.T) {
	for _, ts := range []time.Time{{}, time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC)} {
		rec := core.NewRecord(2)
		rec.Set(core.TimeField(core.TimeKey, ts))
		rec.Set(core.FieldOf(core.MessageKey, "m"))
		want := ts.UTC().Format(time.RFC3339)

		out := NewJSONFormatter(Config{}).FormatString(rec)
		require.Equal(t, `{"time":"`+want+`","msg":"m"}`, out)

		text, err := NewTextFormatter(Config{}).Format(rec)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(text), want+" ["), string(text))
	}
}

package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/svclog/logger"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, filepath.Base(os.Args[0]), s.Service)
	require.Equal(t, "INFO", s.Level)
	require.Equal(t, logger.DefaultCallerOffset, s.CallerOffset)
	require.True(t, s.Stringify)
	require.Equal(t, []string{OutputStdout}, s.Output)
	require.Equal(t, FormatJSON, s.Format)
}

func TestLoad_Files(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "svclog.yaml",
			content: `service: billing
level: warn
caller_offset: 3
stringify: false
output: [stderr]
format: text
`,
		},
		{
			name: "toml",
			file: "svclog.toml",
			content: `service = "billing"
level = "warn"
caller_offset = 3
stringify = false
output = ["stderr"]
format = "text"
`,
		},
		{
			name:    "json",
			file:    "svclog.json",
			content: `{"service":"billing","level":"warn","caller_offset":3,"stringify":false,"output":"stderr","format":"text"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			require.Equal(t, &Settings{
				Service:      "billing",
				Level:        "warn",
				CallerOffset: 3,
				Stringify:    false,
				Output:       []string{OutputStderr},
				Format:       FormatText,
			}, s)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "svclog.yaml", "service: billing\nlevel: info\n")
	t.Setenv("SVCLOG_LEVEL", "ERROR")
	t.Setenv("SVCLOG_STRINGIFY", "false")
	t.Setenv("SVCLOG_OUTPUT", "stdout,stderr")

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "billing", s.Service)
	require.Equal(t, "ERROR", s.Level)
	require.False(t, s.Stringify)
	require.Equal(t, []string{OutputStdout, OutputStderr}, s.Output)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "level: loud\n"))
	require.EqualError(t, err, "invalid log level 'LOUD'")
	require.True(t, errors.Is(err, logger.ErrInvalidLevel))

	_, err = Load(writeFile(t, "bad.yaml", "format: xml\n"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "caller_offset: -1\n"))
	require.Error(t, err)
}

func TestSettings_NewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	s := &Settings{
		Service:      "billing",
		Level:        "DEBUG",
		CallerOffset: logger.DefaultCallerOffset,
		Stringify:    true,
		Output:       []string{path},
		Format:       FormatJSON,
	}

	l, err := s.NewLogger()
	require.NoError(t, err)
	l.Debug("to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &rec))
	require.Equal(t, "debug", rec["level"])
	require.Equal(t, "billing", rec["serviceName"])
	require.Equal(t, "to file", rec["msg"])
	require.True(t, strings.HasPrefix(rec["caller"].(string), "config/config_test.go:"))
}

func TestSettings_NewLoggerTextMulti(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.log")
	second := filepath.Join(dir, "b.log")
	s := &Settings{
		Service:      "billing",
		Level:        "info",
		CallerOffset: logger.DefaultCallerOffset,
		Output:       []string{first, " " + second},
		Format:       "TEXT",
	}

	l, err := s.NewLogger()
	require.NoError(t, err)
	l.Debug("hidden")
	l.InfoFields(logger.String("msg", "hello"), logger.Int("n", 1))
	require.NoError(t, l.Close())

	for _, path := range []string{first, second} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), " [INFO] billing [config/config_test.go:")
		require.True(t, strings.HasSuffix(string(data), "hello n=1\n"), string(data))
	}
}

func TestSettings_NewLoggerInvalid(t *testing.T) {
	_, err := (&Settings{Level: "INFO", Format: FormatJSON}).NewLogger()
	require.Error(t, err)

	_, err = (&Settings{Level: "INFO", Format: FormatJSON, Output: []string{""}}).NewLogger()
	require.Error(t, err)
}

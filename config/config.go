package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/philipp01105/svclog/formatter"
	"github.com/philipp01105/svclog/handler"
	"github.com/philipp01105/svclog/handler/consolehandler"
	"github.com/philipp01105/svclog/handler/filehandler"
	"github.com/philipp01105/svclog/logger"
)

// EnvPrefix prefixes the environment variables that override file values.
const EnvPrefix = "SVCLOG"

const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"

	FormatJSON = "json"
	FormatText = "text"
)

// Settings is the decoded logger configuration.
type Settings struct {
	Service      string   `mapstructure:"service"`
	Level        string   `mapstructure:"level"`
	CallerOffset int      `mapstructure:"caller_offset"`
	Stringify    bool     `mapstructure:"stringify"`
	Output       []string `mapstructure:"output"`
	Format       string   `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service", defaultService())
	v.SetDefault("level", "INFO")
	v.SetDefault("caller_offset", logger.DefaultCallerOffset)
	v.SetDefault("stringify", true)
	v.SetDefault("output", []string{OutputStdout})
	v.SetDefault("format", FormatJSON)
}

func defaultService() string {
	return filepath.Base(os.Args[0])
}

// Load reads settings from path, then applies SVCLOG_* environment
// overrides. An empty path loads defaults and environment only.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every setting that NewLogger would otherwise reject
// later.
func (s *Settings) Validate() error {
	if _, err := logger.ParseLevel(s.Level); err != nil {
		return err
	}
	if s.CallerOffset < 0 {
		return fmt.Errorf("caller_offset must not be negative, got %d", s.CallerOffset)
	}
	switch strings.ToLower(s.Format) {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("unknown format %q", s.Format)
	}
	if len(s.Output) == 0 {
		return errors.New("no output configured")
	}
	return nil
}

// NewLogger builds a Logger writing to every configured output. A text
// format needs structured lines, so it turns stringify off.
func (s *Settings) NewLogger() (*logger.Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var f formatter.Formatter = formatter.NewJSONFormatter(formatter.Config{})
	stringify := s.Stringify
	if strings.ToLower(s.Format) == FormatText {
		f = formatter.NewTextFormatter(formatter.Config{IncludeCaller: true})
		stringify = false
	}

	handlers := make([]handler.Handler, 0, len(s.Output))
	for _, out := range s.Output {
		h, err := newOutput(strings.TrimSpace(out), f)
		if err != nil {
			for _, opened := range handlers {
				_ = opened.Close()
			}
			return nil, err
		}
		handlers = append(handlers, h)
	}

	var h handler.Handler = handlers[0]
	if len(handlers) > 1 {
		h = handler.NewMultiHandler(handlers...)
	}

	return logger.NewBuilder(s.Service).
		WithLevel(s.Level).
		WithCallerOffset(s.CallerOffset).
		WithStringify(stringify).
		WithHandler(h).
		Build()
}

func newOutput(out string, f formatter.Formatter) (handler.Handler, error) {
	switch strings.ToLower(out) {
	case OutputStdout:
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: os.Stdout, Formatter: f}), nil
	case OutputStderr:
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: os.Stderr, Formatter: f}), nil
	case "":
		return nil, errors.New("empty output")
	}
	h, err := filehandler.NewFileHandler(filehandler.FileConfig{Filename: out, Formatter: f})
	if err != nil {
		return nil, errors.Wrapf(err, "open output %s", out)
	}
	return h, nil
}

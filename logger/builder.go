package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/formatter"
	"github.com/philipp01105/svclog/handler"
	"github.com/philipp01105/svclog/handler/consolehandler"
)

// Builder provides a fluent API for building Logger instances. Every
// option has a default; Build validates the level and freezes the result.
type Builder struct {
	serviceName   string
	level         string
	callerOffset  int
	stringify     bool
	stringifySet  bool
	sink          core.Sink
	handler       handler.Handler
	onError       handler.ErrorFunc
	now           core.NowFunc
	resolveCaller core.CallerResolver
}

// NewBuilder creates a new logger builder
func NewBuilder(serviceName string) *Builder {
	return &Builder{
		serviceName:  serviceName,
		level:        "INFO", // Default level
		callerOffset: DefaultCallerOffset,
		stringify:    true,
	}
}

// WithLevel sets the minimum level by name. Names are case-insensitive;
// WARN and WARNING are the same level.
func (b *Builder) WithLevel(level string) *Builder {
	b.level = level
	return b
}

// WithCallerOffset sets the stack depth handed to the caller resolver.
// Wrappers around the logger add one per extra frame.
func (b *Builder) WithCallerOffset(offset int) *Builder {
	b.callerOffset = offset
	return b
}

// WithStringify chooses between JSON text lines (true, the default) and
// structured records (false) on the sink. Without a call, a
// handler.RecordHandler that wants records gets structured lines.
func (b *Builder) WithStringify(stringify bool) *Builder {
	b.stringify = stringify
	b.stringifySet = true
	return b
}

// WithSink sets the function that receives every emitted line. It
// replaces any handler set with WithHandler.
func (b *Builder) WithSink(sink core.Sink) *Builder {
	b.sink = sink
	b.handler = nil
	return b
}

// WithHandler routes lines to h. Errors returned by h go to the function
// set with WithErrorFunc. Logger.Close closes h.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	b.sink = nil
	return b
}

// WithErrorFunc sets where handler errors are reported (default:
// handler.DefaultErrorFunc).
func (b *Builder) WithErrorFunc(fn handler.ErrorFunc) *Builder {
	b.onError = fn
	return b
}

// WithClock sets the source of the "time" field.
func (b *Builder) WithClock(now core.NowFunc) *Builder {
	b.now = now
	return b
}

// WithCallerResolver replaces the stack-walking caller resolver.
func (b *Builder) WithCallerResolver(r core.CallerResolver) *Builder {
	b.resolveCaller = r
	return b
}

// Build creates the Logger instance. It fails with an error matching
// core.ErrInvalidLevel when the level name is not recognized.
func (b *Builder) Build() (*Logger, error) {
	level, err := core.ParseLevel(b.level)
	if err != nil {
		return nil, err
	}
	if b.callerOffset < 0 {
		return nil, fmt.Errorf("caller offset must not be negative, got %d", b.callerOffset)
	}

	cfg := &config{
		callerOffset:  b.callerOffset,
		stringify:     b.stringify,
		sink:          b.sink,
		now:           b.now,
		resolveCaller: b.resolveCaller,
		json:          formatter.NewJSONFormatter(formatter.Config{}),
	}
	if b.handler != nil {
		cfg.sink = handler.AsSink(b.handler, b.onError)
		if rh, ok := b.handler.(handler.RecordHandler); ok && rh.WantsRecords() && !b.stringifySet {
			cfg.stringify = false
		}
	}
	if cfg.sink == nil {
		cfg.sink = handler.AsSink(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer: os.Stdout,
		}), b.onError)
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.resolveCaller == nil {
		cfg.resolveCaller = core.ResolveCaller
	}

	return &Logger{
		serviceName: b.serviceName,
		level:       level,
		cfg:         cfg,
		handler:     b.handler,
	}, nil
}

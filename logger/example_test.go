package logger_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/logger"
)

func newExampleLogger(level string) *logger.Logger {
	log, err := logger.NewBuilder("billing").
		WithLevel(level).
		WithClock(func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }).
		WithCallerResolver(func(int) (string, bool) { return "billing/invoice.go:88", true }).
		WithSink(func(line core.Line) { fmt.Println(line.Text) }).
		Build()
	if err != nil {
		panic(err)
	}
	return log
}

func ExampleNew() {
	_, err := logger.New("billing", "LOUD")
	fmt.Println(err)
	// Output: invalid log level 'LOUD'
}

func ExampleLogger_Info() {
	log := newExampleLogger("INFO")
	log.Debug("hidden")
	log.Info("invoice sent")
	// Output: {"level":"info","serviceName":"billing","time":"2020-01-01T00:00:00Z","caller":"billing/invoice.go:88","msg":"invoice sent"}
}

func ExampleLogger_WarnFields() {
	log := newExampleLogger("WARN")
	log.WarnFields(logger.String("customer", "c-17"), logger.Int("retries", 3))
	// Output: {"level":"warning","serviceName":"billing","time":"2020-01-01T00:00:00Z","caller":"billing/invoice.go:88","customer":"c-17","retries":3}
}

func ExampleChain() {
	log := newExampleLogger("DEBUG")
	req := log.Build().WithField("a", 1)
	req.Info("first")
	req.WithField("b", 2).Info("second")
	// Output:
	// {"level":"info","serviceName":"billing","time":"2020-01-01T00:00:00Z","caller":"billing/invoice.go:88","a":1,"msg":"first"}
	// {"level":"info","serviceName":"billing","time":"2020-01-01T00:00:00Z","caller":"billing/invoice.go:88","a":1,"b":2,"msg":"second"}
}

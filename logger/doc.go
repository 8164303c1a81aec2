// Package logger is the public API of svclog. Most users only need to
// import this package.
//
// A Logger is immutable after construction. The service name, level,
// caller offset, clock and sink are set once via the Builder (or New)
// and never modified, so a Logger is safe for concurrent use without
// locking on the read path.
//
// Every emitted line is a JSON object whose first keys are always
// level, serviceName, time and caller, followed by the payload:
//
//	{"level":"info","serviceName":"api","time":"2020-01-01T00:00:00Z","caller":"cmd/api/main.go:17","msg":"ready"}
//
// Text payloads become "msg"; field payloads are spread into the object:
//
//	log, err := logger.New("api", "INFO")
//	if err != nil {
//	    return err
//	}
//	log.Info("ready")
//	log.InfoFields(logger.Int("port", 8080))
//
// Build starts a Chain that accumulates fields across calls. The fields
// are kept after every terminal call:
//
//	req := log.Build().WithField("request_id", id)
//	req.Info("start")
//	req.WithError(err).Error("failed") // carries request_id too
//
// The package initializes a default Logger (INFO, JSON lines to stdout,
// named after the binary) in init(). The package-level functions Info,
// Errorf, Build, etc. delegate to it.
//
// Level checks happen before any allocation, so filtered-out calls cost
// a single integer comparison. NewSlog and NewLogr expose a Logger
// through log/slog and github.com/go-logr/logr.
package logger

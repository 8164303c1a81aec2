// Package handler provides the Handler interface and the plumbing that
// turns a Handler into the core.Sink a logger writes to.
//
// Handlers are synchronous: Handle returns once the line has been written
// (or has failed). AsSink adapts a Handler to a core.Sink and routes any
// error to an ErrorFunc, by default DefaultErrorFunc, which reports on
// stderr.
//
// Built-in handlers:
//
//   - consolehandler writes lines to any io.Writer (default: stdout).
//   - filehandler appends lines to a file.
//   - MultiHandler fans out a single line to multiple child handlers and
//     combines their errors with go.uber.org/multierr.
//   - zaphandler, zerologhandler and logrushandler forward structured
//     records into an existing zap, zerolog or logrus logger.
//
// Writer-based handlers track processed and failed counts via the Stats
// type, which can be queried at runtime for monitoring.
package handler

// Package consolehandler provides a synchronous handler that writes one
// line per log call to any io.Writer (default: os.Stdout).
//
// Text lines from a stringifying logger are written verbatim; structured
// lines are rendered with the configured formatter. Every line is
// terminated with a newline. Writes are serialized with a mutex unless the
// writer is known to be safe for concurrent use.
package consolehandler

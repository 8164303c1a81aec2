package core

import (
	"runtime"

	"go.uber.org/zap/zapcore"
)

// CallerResolver returns a location token for the call site offset frames
// above the function that invoked the resolver, or false when it cannot
// be determined.
type CallerResolver func(offset int) (string, bool)

// ResolveCaller is the default CallerResolver. Offset 0 names the function
// that called ResolveCaller. The result has the form "dir/file.go:line".
func ResolveCaller(offset int) (string, bool) {
	if offset < 0 {
		return "", false
	}
	pc, file, line, ok := runtime.Caller(offset + 1)
	if !ok {
		return "", false
	}
	return trimmedCaller(pc, file, line), true
}

// CallerFromPC formats the location of a program counter such as the one
// carried by a slog.Record.
func CallerFromPC(pc uintptr) (string, bool) {
	if pc == 0 {
		return "", false
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return "", false
	}
	return trimmedCaller(frame.PC, frame.File, frame.Line), true
}

func trimmedCaller(pc uintptr, file string, line int) string {
	return zapcore.EntryCaller{
		Defined: true,
		PC:      pc,
		File:    file,
		Line:    line,
	}.TrimmedPath()
}

// Package core defines the shared types used across svclog.
//
// It provides the Level type for severity filtering, the Field type for
// typed key-value pairs, the Payload sum type (Text or Fields) that every
// log call is reduced to, the ordered Record that a logger assembles for
// each emitted call, and the Line and Sink types through which finished
// records leave the logger.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// arbitrary types but will cause an allocation.
//
// ResolveCaller walks the goroutine stack with runtime.Caller and formats
// the call site the same way zap does. It is best-effort: a stack that is
// too shallow yields no caller rather than an error.
package core

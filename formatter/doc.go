// Package formatter defines how records are serialized into bytes.
//
// The JSONFormatter writes a record as one JSON object with keys in
// record insertion order, which is the wire format of a stringifying
// logger. The TextFormatter renders the reserved fields (time, level,
// service, caller, msg) in a fixed human-readable layout followed by the
// remaining fields as key=value pairs; console handlers use it for
// structured lines.
//
// Both use a pooled bytes.Buffer internally and rely on Go's Append-style
// functions (time.AppendFormat, strconv.AppendInt) to avoid per-call
// allocations. Buffers larger than 64 KiB are not returned to the pool to
// prevent a single large log line from permanently inflating memory usage.
package formatter

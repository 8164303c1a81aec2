package core

// Reserved record keys, written first and in this order.
const (
	LevelKey       = "level"
	ServiceNameKey = "serviceName"
	TimeKey        = "time"
	CallerKey      = "caller"
	MessageKey     = "msg"
)

// Record is an ordered set of fields. Setting an existing key replaces the
// value in place, so a key keeps the position of its first insertion and
// the last written value wins.
//
// A Record is not safe for concurrent mutation.
type Record struct {
	fields []Field
}

// NewRecord returns an empty record with room for n fields.
func NewRecord(n int) *Record {
	return &Record{fields: make([]Field, 0, n)}
}

// Set adds f or overwrites the field with the same key.
func (r *Record) Set(f Field) {
	for i := range r.fields {
		if r.fields[i].Key == f.Key {
			r.fields[i] = f
			return
		}
	}
	r.fields = append(r.fields, f)
}

// Merge sets each field in order.
func (r *Record) Merge(fields []Field) {
	for _, f := range fields {
		r.Set(f)
	}
}

// Delete removes the field stored under key, if any.
func (r *Record) Delete(key string) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return
		}
	}
}

// Get returns the field stored under key.
func (r *Record) Get(key string) (Field, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns the fields in insertion order. The slice is owned by the
// record and must not be modified.
func (r *Record) Fields() []Field {
	return r.fields
}

// Keys returns the field keys in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Map returns the record as a map of natural Go values.
func (r *Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.fields))
	for _, f := range r.fields {
		m[f.Key] = f.Value()
	}
	return m
}

// Clone returns a copy that shares no storage with r.
func (r *Record) Clone() *Record {
	c := &Record{fields: make([]Field, len(r.fields))}
	copy(c.fields, r.fields)
	return c
}

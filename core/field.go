package core

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
	// TimeFullType holds a time.Time in Any. It is used for times that do
	// not fit in int64 nanoseconds since the epoch.
	TimeFullType
)

var (
	minTimeInt64 = time.Unix(0, math.MinInt64)
	maxTimeInt64 = time.Unix(0, math.MaxInt64)
)

// TimeField creates a time field. Times between 1678 and 2262 are stored as
// nanoseconds; anything else keeps the time.Time itself.
func TimeField(key string, t time.Time) Field {
	if t.Before(minTimeInt64) || t.After(maxTimeInt64) {
		return Field{Key: key, Type: TimeFullType, Any: t}
	}
	return Field{Key: key, Type: TimeType, Int64: t.UnixNano()}
}

// ErrorField creates an error field from err's text. A nil err gives an
// empty string; a nil pointer stored in a non-nil err gives "<nil>".
func ErrorField(key string, err error) Field {
	return Field{Key: key, Type: ErrorType, Str: ErrorText(err)}
}

// ErrorText returns err.Error() without letting a panicking Error method
// escape.
func ErrorText(err error) (text string) {
	if err == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			if v := reflect.ValueOf(err); v.Kind() == reflect.Ptr && v.IsNil() {
				text = "<nil>"
				return
			}
			text = fmt.Sprintf("PANIC=%v", r)
		}
	}()
	return err.Error()
}

// Field represents a key-value pair for structured logging.
// Numeric, bool, time and duration values are stored in Int64/Float64 so
// that common fields never box their value.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// FieldOf creates a field from an arbitrary value, picking the narrowest
// FieldType that can hold it.
func FieldOf(key string, val interface{}) Field {
	switch v := val.(type) {
	case string:
		return Field{Key: key, Type: StringType, Str: v}
	case int:
		return Field{Key: key, Type: IntType, Int64: int64(v)}
	case int32:
		return Field{Key: key, Type: Int64Type, Int64: int64(v)}
	case int64:
		return Field{Key: key, Type: Int64Type, Int64: v}
	case float64:
		return Field{Key: key, Type: Float64Type, Float64: v}
	case float32:
		return Field{Key: key, Type: Float64Type, Float64: float64(v)}
	case bool:
		f := Field{Key: key, Type: BoolType}
		if v {
			f.Int64 = 1
		}
		return f
	case time.Time:
		return TimeField(key, v)
	case time.Duration:
		return Field{Key: key, Type: DurationType, Int64: int64(v)}
	case error:
		return ErrorField(key, v)
	default:
		return Field{Key: key, Type: AnyType, Any: val}
	}
}

// Value returns the field's value as a Go value of its natural type.
func (f Field) Value() interface{} {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case IntType:
		return int(f.Int64)
	case Int64Type:
		return f.Int64
	case Float64Type:
		return f.Float64
	case BoolType:
		return f.Int64 == 1
	case TimeType, TimeFullType:
		return f.Time()
	case DurationType:
		return time.Duration(f.Int64)
	default:
		return f.Any
	}
}

// Time returns the UTC time held by a TimeType or TimeFullType field and
// the zero time for any other type.
func (f Field) Time() time.Time {
	switch f.Type {
	case TimeType:
		return time.Unix(0, f.Int64).UTC()
	case TimeFullType:
		if t, ok := f.Any.(time.Time); ok {
			return t.UTC()
		}
	}
	return time.Time{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case IntType, Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType, TimeFullType:
		return f.Time().Format(time.RFC3339Nano)
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		return f.Str
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// Map converts a map into Fields. Keys are sorted because map iteration
// order is unspecified and records keep insertion order.
func Map(m map[string]interface{}) Fields {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(Fields, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, FieldOf(k, m[k]))
	}
	return fields
}

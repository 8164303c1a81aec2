package logger

import (
	"time"

	"github.com/philipp01105/svclog/core"
)

// Payload, Text and Fields re-export the message sum type.
type (
	Payload = core.Payload
	Text    = core.Text
	Fields  = core.Fields
	Field   = core.Field
)

// Field helper functions for convenience

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	int64Val := int64(0)
	if val {
		int64Val = 1
	}
	return core.Field{Key: key, Type: core.BoolType, Int64: int64Val}
}

// Time creates a time field
func Time(key string, val time.Time) core.Field {
	return core.TimeField(key, val)
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates an "error" field. A nil err gives an empty string and a nil
// pointer held in a non-nil err gives "<nil>".
func Err(err error) core.Field {
	return core.ErrorField("error", err)
}

// Any creates a field with any value, typed by its dynamic type.
func Any(key string, val interface{}) core.Field {
	return core.FieldOf(key, val)
}

// Map creates Fields from a map with keys in sorted order.
func Map(m map[string]interface{}) Fields {
	return core.Map(m)
}

package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/prettylog/core"
)

// Field is a structured key-value pair attached to a record.
type Field = core.Field

// String creates a string field
func String(key, val string) Field {
	return Field{Key: key, Type: core.StringType, Str: val}
}

// Stringer creates a string field from a fmt.Stringer
func Stringer(key string, val fmt.Stringer) Field {
	return Field{Key: key, Type: core.StringType, Str: val.String()}
}

// Int creates an int field
func Int(key string, val int) Field {
	return Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) Field {
	return Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) Field {
	return Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	var n int64
	if val {
		n = 1
	}
	return Field{Key: key, Type: core.BoolType, Int64: n}
}

// Time creates a time field
func Time(key string, val time.Time) Field {
	return Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates an error field under the key "error"
func Err(err error) Field {
	return NamedErr("error", err)
}

// NamedErr creates an error field under key
func NamedErr(key string, err error) Field {
	if err == nil {
		return Field{Key: key, Type: core.ErrorType}
	}
	return Field{Key: key, Type: core.ErrorType, Str: err.Error()}
}

// Any creates a field with any value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Type: core.AnyType, Any: val}
}

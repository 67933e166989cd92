package domain

import (
	"reflect"
	"time"
)

// Params is a loosely typed attribute bag, typically decoded from JSON or
// assembled by a caller that has not yet constructed real value objects.
// The ValidateXxxParams functions inspect a Params without constructing
// anything, so malformed input is reported rather than panicking halfway
// through assembly.
type Params map[string]any

// isObject reports whether v is object-shaped: a map or a struct, looked up
// through any level of pointer indirection. time.Time is rejected even
// though it is a struct — timestamps land where places are expected often
// enough in raw imports that letting them through would hide real bugs.
//
// The check is intentionally shallow beyond that: any other map or struct
// passes, whether or not it is actually a VisitedPlace.
func isObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return true
	case reflect.Struct:
		return rv.Type() != reflect.TypeOf(time.Time{})
	default:
		return false
	}
}

// sequenceOf returns the elements of v as []any when v is a slice or array
// of any element type, and false otherwise.
func sequenceOf(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// isString reports whether v is a plain string.
func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// asNumber converts v to float64 when it is any numeric type JSON or
// in-process callers might supply. encoding/json always decodes numbers as
// float64, but bags assembled in Go code frequently carry ints.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

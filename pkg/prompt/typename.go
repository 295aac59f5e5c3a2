package prompt

import (
	"reflect"
	"time"
)

// TypeName returns the display label the automatic type hint and the built-in
// parser messages use for T. Familiar kinds map to friendly words; everything
// else falls back to the type's own name.
func TypeName[T any]() string {
	var zero T
	switch any(zero).(type) {
	case string:
		return "text"
	case bool:
		return "yes/no"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	case time.Duration:
		return "duration"
	case time.Time:
		return "date/time"
	default:
		t := reflect.TypeFor[T]()
		if name := t.Name(); name != "" {
			return name
		}
		return t.String()
	}
}

package models

import (
	"fmt"
	"reflect"
)

// falseValues are the literal forms cast to false. Blank strings and nil are
// false as well; every other value is true.
var falseValues = map[string]struct{}{
	"0":     {},
	"f":     {},
	"F":     {},
	"false": {},
	"False": {},
	"FALSE": {},
	"off":   {},
	"Off":   {},
	"OFF":   {},
}

// ParseBool coerces value to a strict boolean.
//
//	nil, "", false, 0, 0.0           -> false
//	"0", "f", "false", "off" (any of the listed casings) -> false
//	anything else ("1", "true", 1, true, "yes", ...)    -> true
func ParseBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return parseBoolString(v)
	case fmt.Stringer:
		return parseBoolString(v.String())
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return ParseBool(rv.Elem().Interface())
	default:
		return true
	}
}

func parseBoolString(s string) bool {
	if s == "" {
		return false
	}
	_, isFalse := falseValues[s]
	return !isFalse
}

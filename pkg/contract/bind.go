package contract

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/labstack/echo/v4"
)

var bodyBinder = &echo.DefaultBinder{}

// Bind decodes the JSON request body into i and validates it. Only the body
// is read; path and query parameters are handled by the caller.
func Bind(c echo.Context, i any) error {
	if err := bodyBinder.BindBody(c, i); err != nil {
		return decodeError(err)
	}
	return c.Validate(i)
}

// decodeError maps a body decode failure onto the validation error shape,
// naming the offending field when the decoder knows it.
func decodeError(err error) error {
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) || ute.Field == "" {
		return Invalid("", "Invalid request body")
	}
	return Invalid(ute.Field, ute.Field+" must be "+describeType(ute.Type))
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "valid"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timestampType {
		return "a date (YYYY-MM-DD or RFC 3339)"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	}
	return "valid"
}

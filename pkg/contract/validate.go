package contract

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks contract structs by their `validate` tags. It satisfies
// echo.Validator and reports only the first failing field.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

var defaultValidator = NewValidator()

// Validate checks i with the package validator.
func Validate(i any) error { return defaultValidator.Validate(i) }

func (cv *Validator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Invalid("", err.Error())
	}
	fe := verrs[0]
	return Invalid(fieldPath(fe), message(fe))
}

// fieldPath drops the root struct name from the namespace: "CreateFarmInput.size" -> "size".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// ParseID reads a positive integer identifier; name is reported as the field.
func ParseID(name, raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, Invalid(name, name+" must be a positive integer")
	}
	return uint(n), nil
}

func optionalID(q url.Values, name string) (*uint, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := ParseID(name, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseFilter reads the optional fieldId and cropId query parameters shared
// by the activities and advisories lists.
func ParseFilter(q url.Values) (ListFilter, error) {
	var (
		f   ListFilter
		err error
	)
	if f.FieldID, err = optionalID(q, "fieldId"); err != nil {
		return ListFilter{}, err
	}
	if f.CropID, err = optionalID(q, "cropId"); err != nil {
		return ListFilter{}, err
	}
	return f, nil
}

// Advisory list formats: raw returns stored content as the provider sent it,
// plain flattens HTML markup for display.
const (
	FormatRaw   = "raw"
	FormatPlain = "plain"
)

// Values renders the filter back into query parameters.
func (f ListFilter) Values() url.Values {
	q := url.Values{}
	if f.FieldID != nil {
		q.Set("fieldId", strconv.FormatUint(uint64(*f.FieldID), 10))
	}
	if f.CropID != nil {
		q.Set("cropId", strconv.FormatUint(uint64(*f.CropID), 10))
	}
	return q
}

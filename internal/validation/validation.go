// Package validation runs struct-tag validation and turns the
// validator's errors into messages a human can act on.
//
// Fields are reported by their koanf key, so an error names the
// setting to fix rather than the Go field behind it.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError is a single validation issue for one field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is every field that failed validation, in declaration order.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}

	return strings.Join(parts, "; ")
}

// New returns a validator that names fields after their koanf tag.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	return v
}

// Struct validates s and returns Errors if any rule fails.
// Other failures, such as passing a non-struct, are returned unchanged.
func Struct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make(Errors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(fe),
			Message: describe(fe),
		})
	}

	return fieldErrors
}

// fieldPath drops the root struct name from the namespace: Config.server.port -> server.port.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}

		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items", fe.Param())
		}

		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}

		return fmt.Sprintf("failed %s", fe.Tag())
	}
}

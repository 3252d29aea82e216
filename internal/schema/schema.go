// Package schema validates request payloads against the constraints
// declared in struct tags (required fields, non-negative bounds,
// enumerations) and extracts failures into field-level errors the
// client can act on.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldError describes a single validation issue for a specific field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError aggregates the field errors for a rejected payload.
type ValidationError struct {
	FieldErrors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		parts = append(parts, fe.Field+" "+fe.Error)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks v against its struct tags. A constraint failure is
// returned as *ValidationError; any other error means the payload could
// not be inspected at all.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.FieldErrors = append(out.FieldErrors, FieldError{
			Field: fe.Field(),
			Error: message(fe),
		})
	}
	return out
}

// Fields extracts the field errors from a Validate failure, for rendering
// in an error response body.
func Fields(err error) []FieldError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.FieldErrors
	}
	return []FieldError{{Field: "body", Error: err.Error()}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}

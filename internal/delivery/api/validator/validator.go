// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates bound request structs using `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name to message. Other errors yield an empty map.
func FormatValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fields
	}
	for _, fe := range ve {
		fields[fe.Field()] = formatFieldError(fe)
	}

	return fields
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", fe.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", fe.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", fe.Tag())
	}
}

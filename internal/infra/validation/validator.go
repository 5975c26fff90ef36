// Package validation wires go-playground/validator with JSON field naming so
// validation failures report the field the client actually sent.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New builds a validator that reports struct fields by their json tag name.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

// Describe renders a validation error as "field: rule" pairs, e.g.
// "email: required". Non-validation errors fall back to Error().
func Describe(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		parts = append(parts, fieldErr.Field()+": "+fieldErr.Tag())
	}

	return strings.Join(parts, "; ")
}

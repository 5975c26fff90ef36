// Package validator adapts the shared validation setup to echo's Validator
// interface.
package validator

import (
	domainerrors "passage/internal/domain/errors"
	"passage/internal/infra/validation"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

// echoValidator implements echo.Validator.
type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the validator echo uses for c.Validate calls.
func New() *echoValidator {
	return &echoValidator{validate: validation.New()}
}

// Validate turns validation failures into the 422 application error so the
// error handler renders field details instead of a bare 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err))
	}

	return nil
}

// Package validator adapts go-playground validation to echo's Validator hook.
package validator

import (
	domainerrors "garflex/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator installed on the echo server. Struct tags
// on the request DTOs drive the rules.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound request payload and maps rule violations onto
// the invalid-input application error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return nil
}

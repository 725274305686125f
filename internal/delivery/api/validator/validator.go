// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "glowdesk/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground validator for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a CustomValidator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	return nil
}

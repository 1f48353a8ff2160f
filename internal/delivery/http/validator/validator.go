// Package validator wires go-playground/validator into echo.
package validator

import (
	domainerrors "fleet/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// requestValidator adapts a validator.Validate instance to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

// New builds the request validator with the custom rules used by the GPS
// endpoints. The built-in latitude/longitude tags cover coordinate ranges;
// heading is registered here because compass bearings wrap at 360.
func New() *requestValidator {
	v := validator.New()

	_ = v.RegisterValidation("heading", func(fl validator.FieldLevel) bool {
		deg := fl.Field().Float()

		return deg >= 0 && deg <= 360
	})

	return &requestValidator{validate: v}
}

// Validate implements echo.Validator. Failures surface as a 400 with the
// validator's field report in the details.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

package handler

import "github.com/go-playground/validator/v10"

// requestValidator adapts validator.Validate to echo.Validator
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

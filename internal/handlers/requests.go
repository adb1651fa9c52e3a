package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// CallbackRequest is the query Google appends to the redirect URL.
// The code is deliberately not required: it is forwarded exactly as received.
type CallbackRequest struct {
	Code             string `query:"code"`
	State            string `query:"state" validate:"required_without=Error"`
	Error            string `query:"error"`
	ErrorDescription string `query:"error_description"`
}

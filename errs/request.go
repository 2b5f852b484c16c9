package errs

import (
	"errors"
	"net/http"
	"strings"
)

// Authentication errors
var (
	ErrMissingToken = errors.New("missing access token")
	ErrInvalidToken = errors.New("invalid access token")
	ErrBadPassword  = errors.New("invalid password")
)

// Request & input-validation errors
var (
	ErrValidation = errors.New("validation error")
)

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Field:      "authorization",
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Field:      "authorization",
		Cause:      cause,
	}
}

func NewBadPasswordError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrBadPassword,
		Field:      "password",
	}
}

// FieldError describes one rejected field of a request payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErr reports every field of a payload that failed validation
type ValidationErr struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationErr {
	return &ValidationErr{Fields: fields}
}

func (e *ValidationErr) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationErr) Unwrap() error {
	return ErrValidation
}

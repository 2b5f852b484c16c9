package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrInternal        = errors.New("internal server error")
	ErrTooManyRequests = errors.New("too many requests")
	ErrUnavailable     = errors.New("service unavailable")
)

type ApiErr struct {
	StatusCode int
	err        error
	message    string
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error, never sent to clients
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
		message:    message,
	}
}

func wrapped(statusCode int, message string, sentinel error) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        fmt.Errorf("%s: %w", message, sentinel),
		message:    message,
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// Message is the client-facing message without details or sentinel suffix
func (e *ApiErr) Message() string {
	if e.message != "" {
		return e.message
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var apiErr *ApiErr
		if errors.As(e.Cause, &apiErr) {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// Common error constructors with appropriate HTTP status codes
func NewNotFoundError(message string) *ApiErr {
	return wrapped(http.StatusNotFound, message, ErrNotFound)
}

func NewInternalErrorWithCause(message string, cause error) *ApiErr {
	e := wrapped(http.StatusInternalServerError, message, ErrInternal)
	e.Cause = cause
	return e
}

func NewServiceUnavailableError(message string) *ApiErr {
	return wrapped(http.StatusServiceUnavailable, message, ErrUnavailable)
}

func NewTooManyRequestsError(details string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusTooManyRequests, err: ErrTooManyRequests, Details: details}
}

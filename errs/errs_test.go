package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrConstructors(t *testing.T) {
	notFound := NewNotFoundError("Product not found")
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
	assert.Equal(t, "Product not found", notFound.Message())
	assert.Equal(t, "Product not found: not found", notFound.Error())
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.NotErrorIs(t, notFound, ErrValidation)

	unavailable := NewServiceUnavailableError("admin authentication is not configured")
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.StatusCode)
	assert.ErrorIs(t, unavailable, ErrUnavailable)

	tooMany := NewTooManyRequestsError("retry later")
	assert.Equal(t, "too many requests: retry later", tooMany.Error())
	assert.Equal(t, "too many requests", tooMany.Message())
}

func TestApiErrWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	dbErr := NewDatabaseError("find", "products", cause)

	assert.Equal(t, http.StatusInternalServerError, dbErr.StatusCode)
	assert.ErrorIs(t, dbErr, ErrDatabaseQuery)
	assert.Equal(t, "database query failed: failed to find products -> connection refused", dbErr.GetFullError())

	outer := NewInternalErrorWithCause("login failed", dbErr)
	assert.Contains(t, outer.GetFullError(), "connection refused")

	invalid := NewInvalidTokenError(cause)
	assert.ErrorIs(t, invalid, ErrInvalidToken)
	assert.Equal(t, "authorization", invalid.Field)
}

func TestValidationErr(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "email", Message: "is required"},
		FieldError{Field: "name", Message: "is required"},
	)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, err.Fields, 2)
	assert.Equal(t, "email", err.Fields[0].Field)
	assert.Equal(t, "validation error: email is required; name is required", err.Error())

	var target *ValidationErr
	wrapped := errors.Join(errors.New("decode"), err)
	assert.True(t, errors.As(wrapped, &target))
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/thegambler1/qmdigital/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	// Marshal first so a failure can still produce a clean 500
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var validationErr *errs.ValidationErr
	if errors.As(err, &validationErr) {
		r.WriteJSONStatus(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  "Validation error",
			Status: "validation_error",
			Errors: validationErr.Fields,
		})
		return
	}

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) || !isClientVisible(apiErr) {
		// Unexpected errors are logged in full and never leaked to the client
		r.writeInternalError(w, err)
		return
	}

	response := ErrorResponse{
		Error:   apiErr.Message(),
		Message: apiErr.Message(),
		Status:  "error",
		Field:   apiErr.Field,
		Details: apiErr.Details,
	}

	if apiErr.Cause != nil {
		r.logger.Debug().Str("error", apiErr.GetFullError()).Int("status", apiErr.StatusCode).Msg("request rejected")
	}

	r.WriteJSONStatus(w, apiErr.StatusCode, response)
}

// isClientVisible reports whether the error message may be sent as is.
// 5xx errors are hidden except 503, which only says a feature is not configured.
func isClientVisible(apiErr *errs.ApiErr) bool {
	if apiErr.StatusCode == http.StatusServiceUnavailable {
		return true
	}
	return apiErr.StatusCode < http.StatusInternalServerError
}

func (r Responder) writeInternalError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		r.logger.Error().Str("error", apiErr.GetFullError()).Msg("internal error")
	} else {
		r.logger.Error().Err(err).Msg("internal error")
	}

	r.WriteJSONStatus(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Message: "An unexpected error occurred",
		Status:  "error",
	})
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}

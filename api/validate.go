package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thegambler1/qmdigital/errs"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(f reflect.StructField) string {
	tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if tag == "" || tag == "-" {
		return f.Name
	}
	return tag
}

// decodeAndValidate reads a single JSON value into dest and runs its validate tags.
// Unknown fields are ignored. Wrong-typed fields and tag failures are reported
// together as *errs.ValidationErr; an oversized body is a 413.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return decodeError(err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var typeErr *json.UnmarshalTypeError
	if err := dec.Decode(dest); err != nil && !(errors.As(err, &typeErr) && typeErr.Field != "") {
		return decodeError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return errs.NewValidationError(errs.FieldError{Field: "body", Message: "must contain a single JSON value"})
	}

	var fields []errs.FieldError
	if typeErr != nil {
		fields = typeErrors(data, dest, typeErr)
	}
	fields = append(fields, validationFields(validate.Struct(dest), fields)...)
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		e := errs.NewApiErr(http.StatusRequestEntityTooLarge, "request body too large")
		e.Details = fmt.Sprintf("limit is %d bytes", maxErr.Limit)
		return e
	case errors.As(err, &typeErr):
		return errs.NewValidationError(errs.FieldError{Field: "body", Message: "must be a JSON object"})
	case errors.Is(err, io.EOF):
		return errs.NewValidationError(errs.FieldError{Field: "body", Message: "is required"})
	default:
		return errs.NewValidationError(errs.FieldError{Field: "body", Message: "must be valid JSON"})
	}
}

// typeErrors decodes each top level field on its own so every wrong-typed
// field is listed, not only the first one the decoder hit.
func typeErrors(data []byte, dest any, first *json.UnmarshalTypeError) []errs.FieldError {
	fallback := []errs.FieldError{{Field: first.Field, Message: "must be " + jsonKind(first.Type)}}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fallback
	}

	t := reflect.TypeOf(dest)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fallback
	}

	var fields []errs.FieldError
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		value, ok := raw[name]
		if !ok {
			continue
		}
		var fieldErr *json.UnmarshalTypeError
		if err := json.Unmarshal(value, reflect.New(f.Type).Interface()); errors.As(err, &fieldErr) {
			field := name
			if fieldErr.Field != "" {
				field = name + "." + fieldErr.Field
			}
			fields = append(fields, errs.FieldError{Field: field, Message: "must be " + jsonKind(fieldErr.Type)})
		}
	}
	if len(fields) == 0 {
		return fallback
	}
	return fields
}

// validationFields converts validator failures, skipping top level fields
// already reported as wrong-typed.
func validationFields(err error, reported []errs.FieldError) []errs.FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []errs.FieldError{{Field: "body", Message: "is invalid"}}
	}

	skip := make(map[string]bool, len(reported))
	for _, f := range reported {
		skip[strings.SplitN(f.Field, ".", 2)[0]] = true
	}

	fields := make([]errs.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		if skip[fe.Field()] {
			continue
		}
		fields = append(fields, errs.FieldError{
			Field:   fieldPath(fe),
			Message: validationMessage(fe),
		})
	}
	return fields
}

// fieldPath drops the top level struct name, e.g. "ContactInput.email" becomes "email"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	}
	return "is invalid"
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	}
	return "a valid value"
}

package apperror

import (
	"fmt"
	"net/http"
)

// AppError is an error a handler can render as-is. Details, when set, is
// sent to the client under error.details.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
	Err        error
}

// FieldDetails names the request field an error is about.
type FieldDetails struct {
	Field string `json:"field"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Conflict builds a 409 for a value that must be unique. field is the JSON
// name of the offending request field.
func Conflict(field, message string) *AppError {
	e := New(CodeConflict, message, http.StatusConflict)
	e.Details = FieldDetails{Field: field}
	return e
}

// Wrap keeps err as the cause while exposing only code and message.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

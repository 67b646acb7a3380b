package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the contract every API error fulfils: it is an error
// and knows which HTTP status it maps to.
type ErrorResponse interface {
	error
	Code() int
}

var (
	InternalServerError  = NewSimple(http.StatusInternalServerError, "Internal server error")
	NotFoundError        = NewSimple(http.StatusNotFound, "Not found")
	MalformedBodyError   = NewSimple(http.StatusBadRequest, "Malformed request body")
	SlotUnavailableError = NewSimple(http.StatusConflict, "This slot is unavailable")
	InvalidDateError     = NewSimple(http.StatusBadRequest, "Invalid date. Date must be a valid future date.")
	InvalidRoomError     = NewSimple(http.StatusBadRequest, "Invalid room number. Room number must be 1 or 2.")
)

type SimpleError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func NewSimple(code int, message string) *SimpleError {
	return &SimpleError{StatusCode: code, Message: message}
}

func NewMissingParamError(name string) *SimpleError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter: %s", name))
}

func (e *SimpleError) Error() string { return e.Message }

func (e *SimpleError) Code() int { return e.StatusCode }

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type ValidationError struct {
	StatusCode int          `json:"-"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Code() int { return e.StatusCode }

// FromValidationError converts validator.v10 output into a single 400
// response carrying one entry per violated field.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
	}

	return &ValidationError{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Fields:     fields,
	}
}

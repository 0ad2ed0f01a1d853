package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"skyward-experiment/flightdeck/internal/constants"
)

// FieldError carries field-level detail for validation failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// AppError is the base error type returned across the service boundary.
// Handlers map StatusCode straight onto the HTTP response.
type AppError struct {
	Message    string       `json:"message"`
	StatusCode int          `json:"-"`
	Code       string       `json:"code"`
	Details    []FieldError `json:"details,omitempty"`

	// cause is the underlying storage or cache fault. Kept for logging,
	// never serialized to the client.
	cause error
}

func (e *AppError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Message, e.Details[0].Message, e.Details[0].Code)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/errors.As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewValidationError builds a 400 error from one or more field errors.
func NewValidationError(details ...FieldError) *AppError {
	return &AppError{
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Code:       constants.CodeValidationError,
		Details:    details,
	}
}

// NewNotFoundError builds a 404 error.
func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = "Resource not found"
	}
	return &AppError{
		Message:    message,
		StatusCode: http.StatusNotFound,
		Code:       constants.CodeResourceNotFound,
	}
}

// NewConflictError builds a 409 error with a machine-readable code.
func NewConflictError(message, code string) *AppError {
	return &AppError{
		Message:    message,
		StatusCode: http.StatusConflict,
		Code:       code,
	}
}

// NewInternalError wraps a storage or cache fault. The cause stays
// reachable through Unwrap so the API layer can log it; the client only
// ever sees the opaque message.
func NewInternalError(err error) *AppError {
	return &AppError{
		Message:    "Internal server error",
		StatusCode: http.StatusInternalServerError,
		Code:       constants.CodeInternalError,
		cause:      err,
	}
}

// AsAppError unwraps err into an *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasDetailCode reports whether err is a validation/conflict error carrying
// the given detail code, either at the top level or in a field detail.
func HasDetailCode(err error, code string) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return false
	}
	if appErr.Code == code {
		return true
	}
	for _, d := range appErr.Details {
		if d.Code == code {
			return true
		}
	}
	return false
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyward-experiment/flightdeck/internal/apperrors"
	"skyward-experiment/flightdeck/internal/constants"
	"skyward-experiment/flightdeck/internal/logging"
	"skyward-experiment/flightdeck/internal/models/dtos"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := dtos.APIResponse[T]{
		Status:    constants.APIStatusOk,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithAppError maps the error taxonomy onto HTTP. Unknown errors are
// rendered as opaque 500s; storage faults are never swallowed silently; the
// underlying cause is logged here, once, rather than at every call site.
func respondWithAppError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.NewInternalError(err)
	}
	if cause := errors.Unwrap(appErr); cause != nil {
		logging.Error("Request failed",
			"code", appErr.Code,
			"error", cause.Error(),
		)
	}

	body := &dtos.ErrorBody{
		Message: appErr.Message,
		Code:    appErr.Code,
	}
	if len(appErr.Details) > 0 {
		body.Details = appErr.Details
	}

	resp := dtos.APIResponse[any]{
		Status:    constants.APIStatusError,
		Timestamp: time.Now().UTC(),
		Error:     body,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithBadRequest(w http.ResponseWriter, field, message string) {
	respondWithAppError(w, apperrors.NewValidationError(apperrors.FieldError{
		Field:   field,
		Message: message,
		Code:    constants.CodeValidationError,
	}))
}

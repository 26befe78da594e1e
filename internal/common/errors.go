package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden access")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("resource conflict") // e.g., username already exists
	ErrValidation   = errors.New("validation failed")
	ErrNetwork      = errors.New("network error") // connectivity/timeout toward the judge API
	ErrInternal     = errors.New("internal server error")
)

// ErrorFromStatus maps a judge API response status to a domain error. A nil
// return means 2xx.
func ErrorFromStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusConflict:
		return ErrConflict
	default:
		return ErrInternal
	}
}

// HTTPStatusFromError maps domain errors to HTTP status codes (mock judge
// side, the inverse of ErrorFromStatus).
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

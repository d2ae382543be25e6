package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden access")
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("resource conflict") // e.g., username already exists
	ErrInternalServer     = errors.New("internal server error")
	ErrValidation         = errors.New("validation failed")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrNoSelection        = errors.New("no contest or question selected")
)

// ErrorFromStatus maps a non-2xx API status code onto the domain error it
// stands for, so call sites can branch with errors.Is.
func ErrorFromStatus(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusConflict:
		return ErrConflict
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	}
	return ErrInternalServer
}

// RemoteError carries the status and message body of a failed API call while
// unwrapping to the matching sentinel error.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded %d", e.Status)
	}
	return fmt.Sprintf("api responded %d: %s", e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return ErrorFromStatus(e.Status)
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

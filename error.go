package readview

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL         = "internal"
	EINVALID          = "invalid"
	ENOTFOUND         = "not_found"
	EHTTP             = "http"
	EUNSUPPORTED      = "unsupported"
	ETOOLARGE         = "too_large"
	ETRANSPORT        = "transport"
	ECACHEUNAVAILABLE = "cache_unavailable"
	ESERIALIZATION    = "serialization"
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Status is the HTTP status code for EHTTP errors.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// HTTPStatus returns the response status carried by an EHTTP error, or 0.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Code == EHTTP {
		return e.Status
	}
	return 0
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// HTTPErrorf returns an EHTTP error for a non-2xx response.
func HTTPErrorf(status int, rawURL string) *Error {
	return &Error{
		Code:    EHTTP,
		Message: fmt.Sprintf("HTTP %d for %s", status, rawURL),
		Status:  status,
	}
}

package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows its HTTP status.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewHTTPErrorf is NewHTTPError with a formatted message.
func NewHTTPErrorf(code int, format string, args ...any) *HTTPError {
	return &HTTPError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewBadRequest wraps a binding or parsing failure as a 400.
func NewBadRequest(err error) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: err.Error()}
}

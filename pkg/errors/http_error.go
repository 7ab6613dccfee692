package errors

import "net/http"

// HTTPError is an error that knows its HTTP status. Delivery layers map
// domain errors into it; pkg/response renders it.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

// NewHTTPError builds an HTTPError whose code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

func (e *HTTPError) Error() string { return e.Message }

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)

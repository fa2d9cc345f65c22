package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single failure type surfaced by the data layer: an HTTP
// status and a message, uniform across every operation. Hooks and loaders
// never wrap or retry; the error travels untouched to whoever renders it.
type Error struct {
	// Status is the HTTP status code of the failed request.
	Status int

	// Message is the server-provided error message when the response body
	// carried one, or the standard status text otherwise.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("fetch: %s (status %d)", e.Message, e.Status)
}

// NewError builds an Error, substituting the standard status text when the
// server sent no message.
func NewError(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Status: status, Message: message}
}

// IsNotFound reports whether err is a fetch Error with a 404 status.
func IsNotFound(err error) bool {
	status, ok := StatusCode(err)
	return ok && status == http.StatusNotFound
}

// StatusCode extracts the HTTP status from a fetch Error anywhere in err's
// chain. The second return is false when err carries no fetch Error.
func StatusCode(err error) (int, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Status, true
	}
	return 0, false
}

// Package apperror defines the typed domain errors the service layer
// raises and the HTTP boundary translates. Anything that is not an
// *apperror.Error surfaces as a generic 500 without leaking internals.
package apperror

import (
	"errors"
	"net/http"
)

// Error is a domain error carrying the HTTP status it translates to.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports a referenced entity (employee or request) as absent.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// BadRequest reports invalid input, an authorization failure, or an
// invalid state transition.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Translate maps any error to the status code and message the HTTP
// boundary should respond with. Unrecognized errors become a 500 with a
// generic message.
func Translate(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

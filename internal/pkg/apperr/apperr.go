package apperr

import "net/http"

// Error is an application error carrying the HTTP status it should surface
// with and, for field-level problems, the offending property name.
type Error struct {
	Status   int
	Message  string
	Property string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Validation marks out-of-range or malformed input caught before the store.
func Validation(property, msg string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: msg, Property: property}
}

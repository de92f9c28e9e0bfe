package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the HTTP boundary
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindStorage
	KindPersistence
)

// Error is the single error type services hand to handlers
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the kind onto an HTTP status code
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Validation carries a field -> messages map
func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "The given data was invalid.", Fields: fields}
}

// Field is a shorthand for a single-field validation failure
func Field(field, message string) *Error {
	return Validation(map[string][]string{field: {message}})
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Storage wraps a media store failure
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "media storage failed", Err: err}
}

// Persistence wraps a database failure
func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: "database operation failed", Err: err}
}

// As extracts an *Error from err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

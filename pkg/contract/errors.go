package contract

import (
	"errors"
	"fmt"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

var (
	// ErrUnauthenticated means no valid session identified the caller.
	ErrUnauthenticated = errors.New("unauthorized")
	// ErrForbidden means the caller is known but does not own the resource.
	ErrForbidden = errors.New("forbidden")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a primary-key miss for one entity kind.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string { return e.Kind + " not found" }

func NotFound(kind string, id uint) *NotFoundError { return &NotFoundError{Kind: kind, ID: id} }

// InternalError carries a client-safe message; Err is logged, never sent.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *InternalError) Unwrap() error { return e.Err }

func Internal(message string, err error) *InternalError {
	return &InternalError{Message: message, Err: err}
}

// Package errs defines the sentinel errors the storefront services
// return. Handlers map them to HTTP statuses with Status.
package errs

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrValidation         = errors.New("validation failed")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Status maps a service error to an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPersistenceFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

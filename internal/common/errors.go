// Package common defines sentinel errors shared across the storefront
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository-level errors
	ErrorNotFound = errors.New("not found")

	// service-level errors
	ErrorInternal   = errors.New("internal error")
	ErrorBackend    = errors.New("operation failed")
	ErrorValidation = errors.New("validation error")

	// auth errors
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
)

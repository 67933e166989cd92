package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. a weight entry without a method).
// Handlers should map this to HTTP 422 Unprocessable Entity.
//
// Note the distinction from the []error lists returned by the
// ValidateXxxParams functions: those describe the shape of untrusted input
// and are data, not failures. ErrValidation is a failure of an operation.
var ErrValidation = errors.New("validation error")

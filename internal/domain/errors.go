package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, malformed date string).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write collides with an existing record,
// e.g. a second check-in for the same user and date.
// Handlers should map this to HTTP 400 with the business-rule message.
var ErrConflict = errors.New("conflict")

// ErrInvalidCredentials is returned by the auth service when the email is
// unknown or the password does not match.
// Handlers should map this to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

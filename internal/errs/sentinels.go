// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service/transport layers.
var (
	// ErrNotFound indicates the requested entity does not exist or is not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("validation")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials is returned for both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated indicates a missing, malformed or expired bearer token.
	ErrUnauthenticated = errors.New("unauthenticated")
)

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingCredential indicates no usable API key was found in the
	// environment. Fatal before any network call is made.
	ErrMissingCredential = errors.New("missing API key (set GOOGLE_PLACES_API_KEY or GOOGLE_API_KEY)")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPath indicates a field path with no segments, such as an
	// empty string or a path containing an empty segment ("a..b").
	ErrInvalidPath = errors.New("invalid field path")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

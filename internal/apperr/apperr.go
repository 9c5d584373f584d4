package apperr

import "errors"

// Shared error kinds. Stores and services return these, usually wrapped
// with context via fmt.Errorf("...: %w", ...); the HTTP layer maps them to
// status codes in internal/httpx. Anything that doesn't match a kind below
// is treated as an internal error.
var (
	// ErrNotFound means zero rows matched a lookup. It covers both
	// "never existed" and "already deleted/expired" — callers can't tell
	// the two apart.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("already exists")

	// ErrUnauthorized means bad credentials or an unresolvable session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformedHash means a stored password hash string could not be
	// decoded.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrValidation means a request body or parameter failed to parse.
	ErrValidation = errors.New("invalid request")
)

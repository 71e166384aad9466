package domain

import "errors"

// Sentinel domain errors. The HTTP layer owns the mapping from these to
// status codes; domain and service code never sees a transport status.
var (
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a login response never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken = errors.New("missing or malformed authorization header")

	// ErrInvalidToken covers structural corruption, signature mismatch and
	// expiry alike; callers cannot distinguish which check failed.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrForbidden    = errors.New("insufficient role")
	ErrUserNotFound = errors.New("user not found")
	ErrNameTooShort = errors.New("name must be at least 2 characters")
)

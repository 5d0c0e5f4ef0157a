package application

import "errors"

// Failures surfaced to callers. The messages never say whether an email is
// registered or why a token was refused.
var (
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// ErrSessionNotFound covers a missing session and one owned by someone else.
var ErrSessionNotFound = errors.New("session not found")

var ErrEmptyMessage = errors.New("message must not be empty")

package services

import "errors"

// Service-level failures. Each one maps to exactly one HTTP status in the
// handlers; anything else surfaces as a 500.
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBookNotFound       = errors.New("book not found")
	ErrNotOwner           = errors.New("not the book owner")
)

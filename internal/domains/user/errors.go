package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")

	// Conflict - surfaced as 400 on the legacy sign-up route
	ErrEmailAlreadyRegistered    = errors.New("email already registered")
	ErrUsernameAlreadyRegistered = errors.New("username already registered")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

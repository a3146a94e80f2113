package services

import "errors"

var (
	// ErrInvalidInput marks a malformed request body or parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a lookup that matched no document.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials marks a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

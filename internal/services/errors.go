package services

import "errors"

var (
	// ErrUsernameTaken is returned by Signup when the userName is already registered.
	ErrUsernameTaken = errors.New("username is already in use")
	// ErrInvalidCredentials covers both an unknown userName and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username and/or password")
)

package user

import "errors"

var (
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrNoUsersRegistered  = errors.New("no users registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Input errors raised before storage is touched.
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

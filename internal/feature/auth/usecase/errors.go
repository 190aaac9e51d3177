// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email is unknown or the password does not match.
	// Callers must not reveal which of the two failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAdminRequired is returned by AdminLogin when the credentials are valid
	// but the account does not hold the admin role. No token is issued.
	ErrAdminRequired = errors.New("admin credentials required")
)

// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no active user matches an email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidRole is returned when the requested role is not open to registration.
	ErrInvalidRole = errors.New("invalid role")

	// ErrWeakPassword is returned when the password does not meet the minimum length.
	ErrWeakPassword = errors.New("password too short")

	// ErrPasswordTooLong is returned when the password exceeds what bcrypt can hash.
	ErrPasswordTooLong = errors.New("password too long")

	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotVerified is returned when valid credentials belong to an unverified account.
	ErrAccountNotVerified = errors.New("account not verified")

	// ErrVerificationTokenNotFound is returned by stores when a token does not exist or was already used.
	ErrVerificationTokenNotFound = errors.New("verification token not found")

	// ErrInvalidVerificationToken is returned when a verification token is unknown, used or expired.
	ErrInvalidVerificationToken = errors.New("invalid verification token")
)

// Package usecase implements the business logic for the profile feature.
package usecase

import "errors"

var (
	// ErrProfileNotFound is returned when no active profile matches.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileAlreadyExists is returned when a user already owns a profile.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrUserNotFound is returned when the owning user is absent or deleted.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidGender is returned when the gender is not one of the known values.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidCoordinates is returned when only one coordinate is given or a value is out of range.
	ErrInvalidCoordinates = errors.New("invalid address coordinates")
)

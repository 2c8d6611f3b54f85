// Package usecase implements the business logic for the animal feature.
package usecase

import "errors"

var (
	// ErrAnimalNotFound is returned when no active animal matches.
	ErrAnimalNotFound = errors.New("animal not found")

	// ErrInvalidName is returned when the name is blank or too long.
	ErrInvalidName = errors.New("invalid animal name")
)

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"adoptamena_backend/internal/feature/profile/domain/entity"
)

// ProfileRepository abstracts the persistence layer for profiles.
// Every Find method excludes soft-deleted rows.
type ProfileRepository interface {
	// Create persists a new profile. Returns ErrProfileAlreadyExists when the user already owns one.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindActiveByID returns the active profile with the given ID or ErrProfileNotFound.
	FindActiveByID(ctx context.Context, id uint) (*entity.Profile, error)

	// FindActiveByUserID returns the active profile owned by userID or ErrProfileNotFound.
	FindActiveByUserID(ctx context.Context, userID uint) (*entity.Profile, error)

	// Save overwrites every column of an active profile.
	// Returns ErrProfileNotFound when the row was deleted since it was read.
	Save(ctx context.Context, profile *entity.Profile) error
}

// OwnerReader resolves the email of an active user.
type OwnerReader interface {
	// EmailByUserID returns ErrUserNotFound when the user is absent or deleted.
	EmailByUserID(ctx context.Context, userID uint) (string, error)
}

// UpdateInput carries the mutable fields of a profile.
// Nil pointers clear the corresponding column; EarnedPoints is kept when nil.
type UpdateInput struct {
	OrganizationName *string
	Name             *string
	LastName         *string
	Address          *string
	Latitude         *float64
	Longitude        *float64
	Description      *string
	Gender           *string
	Birthdate        *time.Time
	Document         *string
	PhoneNumber      *string
	EarnedPoints     *int
}

type profileUsecase struct {
	profiles ProfileRepository
	owners   OwnerReader
}

// NewProfileUsecase creates a new profileUsecase.
func NewProfileUsecase(profiles ProfileRepository, owners OwnerReader) *profileUsecase {
	return &profileUsecase{profiles: profiles, owners: owners}
}

// GetByID returns the active profile with the given ID.
func (u *profileUsecase) GetByID(ctx context.Context, id uint) (*entity.Profile, error) {
	return u.profiles.FindActiveByID(ctx, id)
}

// GetByUserID returns the active profile owned by the given user.
func (u *profileUsecase) GetByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	return u.profiles.FindActiveByUserID(ctx, userID)
}

// Save creates the default profile of a freshly registered user.
// The user's email stands in as display name until the owner edits it.
func (u *profileUsecase) Save(ctx context.Context, userID uint) error {
	email, err := u.owners.EmailByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := u.profiles.FindActiveByUserID(ctx, userID); err == nil {
		return ErrProfileAlreadyExists
	} else if !errors.Is(err, ErrProfileNotFound) {
		return fmt.Errorf("failed to look up profile: %w", err)
	}

	p := &entity.Profile{UserID: userID, Name: &email}
	if err := u.profiles.Create(ctx, p); err != nil {
		return err
	}
	slog.Info("profile created", "profile_id", p.ID, "user_id", userID)
	return nil
}

// UpdateByID replaces the mutable fields of an active profile.
// The identity is always the path id; owner and deleted flag come from storage.
func (u *profileUsecase) UpdateByID(ctx context.Context, id uint, in UpdateInput) (*entity.Profile, error) {
	current, err := u.profiles.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var gender *entity.Gender
	if in.Gender != nil {
		g, ok := entity.ParseGender(*in.Gender)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidGender, *in.Gender)
		}
		gender = &g
	}
	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, err
	}

	updated := &entity.Profile{
		ID:               id,
		UserID:           current.UserID,
		OrganizationName: in.OrganizationName,
		Name:             in.Name,
		LastName:         in.LastName,
		Address:          in.Address,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		Description:      in.Description,
		Gender:           gender,
		Birthdate:        in.Birthdate,
		Document:         in.Document,
		PhoneNumber:      in.PhoneNumber,
		EarnedPoints:     current.EarnedPoints,
		IsDeleted:        current.IsDeleted,
		CreatedAt:        current.CreatedAt,
	}
	if in.EarnedPoints != nil {
		updated.EarnedPoints = *in.EarnedPoints
	}

	if err := u.profiles.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	slog.Info("profile updated", "profile_id", id)
	return updated, nil
}

// DeleteByID soft-deletes an active profile.
func (u *profileUsecase) DeleteByID(ctx context.Context, id uint) error {
	p, err := u.profiles.FindActiveByID(ctx, id)
	if err != nil {
		return err
	}

	p.IsDeleted = true
	if err := u.profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	slog.Info("profile deleted", "profile_id", id)
	return nil
}

func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidCoordinates)
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return fmt.Errorf("%w: out of range", ErrInvalidCoordinates)
	}
	return nil
}

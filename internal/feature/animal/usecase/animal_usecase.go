package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"adoptamena_backend/internal/feature/animal/domain/entity"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AnimalRepository abstracts the persistence layer for animals.
type AnimalRepository interface {
	Create(ctx context.Context, a *entity.Animal) error
	FindActiveByID(ctx context.Context, id uint) (*entity.Animal, error)
	ListActive(ctx context.Context, limit, offset int) ([]entity.Animal, error)
	Save(ctx context.Context, a *entity.Animal) error
}

// Page selects a window of the active animals ordered by id.
type Page struct {
	Limit  int
	Offset int
}

// normalize clamps the page to sane bounds.
func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

type animalUsecase struct {
	animals AnimalRepository
}

// NewAnimalUsecase creates a new animalUsecase.
func NewAnimalUsecase(animals AnimalRepository) *animalUsecase {
	return &animalUsecase{animals: animals}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > entity.MaxNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrInvalidName, entity.MaxNameLength)
	}
	return name, nil
}

func (u *animalUsecase) List(ctx context.Context, page Page) ([]entity.Animal, error) {
	page = page.normalize()
	return u.animals.ListActive(ctx, page.Limit, page.Offset)
}

func (u *animalUsecase) GetByID(ctx context.Context, id uint) (*entity.Animal, error) {
	return u.animals.FindActiveByID(ctx, id)
}

// Create validates the name and stores a new animal.
func (u *animalUsecase) Create(ctx context.Context, name string) (*entity.Animal, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	a := &entity.Animal{Name: name}
	if err := u.animals.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}
	slog.Info("animal created", "animal_id", a.ID)
	return a, nil
}

// UpdateByID renames an active animal.
func (u *animalUsecase) UpdateByID(ctx context.Context, id uint, name string) (*entity.Animal, error) {
	a, err := u.animals.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Name, err = validateName(name); err != nil {
		return nil, err
	}
	if err := u.animals.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	slog.Info("animal updated", "animal_id", id)
	return a, nil
}

// DeleteByID soft-deletes an active animal.
func (u *animalUsecase) DeleteByID(ctx context.Context, id uint) error {
	a, err := u.animals.FindActiveByID(ctx, id)
	if err != nil {
		return err
	}
	a.IsDeleted = true
	if err := u.animals.Save(ctx, a); err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}
	slog.Info("animal deleted", "animal_id", id)
	return nil
}

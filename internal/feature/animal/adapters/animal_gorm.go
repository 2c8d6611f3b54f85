// Package adapters provides repository implementations for the animal feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adoptamena_backend/internal/feature/animal/domain/entity"
	"adoptamena_backend/internal/feature/animal/usecase"
)

type animalGorm struct {
	db *gorm.DB
}

var _ usecase.AnimalRepository = (*animalGorm)(nil)

// NewAnimalGorm creates a new animalGorm backed by db.
func NewAnimalGorm(db *gorm.DB) *animalGorm {
	return &animalGorm{db: db}
}

func (r *animalGorm) Create(ctx context.Context, a *entity.Animal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *animalGorm) FindActiveByID(ctx context.Context, id uint) (*entity.Animal, error) {
	var a entity.Animal
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAnimalNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListActive returns one page of active animals ordered by id.
func (r *animalGorm) ListActive(ctx context.Context, limit, offset int) ([]entity.Animal, error) {
	animals := make([]entity.Animal, 0, limit)
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalGorm) Save(ctx context.Context, a *entity.Animal) error {
	return r.db.WithContext(ctx).Save(a).Error
}

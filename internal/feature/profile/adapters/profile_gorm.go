// Package adapters provides repository implementations for the profile feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adoptamena_backend/internal/feature/profile/domain/entity"
	"adoptamena_backend/internal/feature/profile/usecase"
	"adoptamena_backend/internal/shared/dberr"
	"adoptamena_backend/internal/shared/gormtx"
)

type profileGorm struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileGorm creates a new profileGorm backed by db.
func NewProfileGorm(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

// Create inserts the profile. A second profile for the same user yields usecase.ErrProfileAlreadyExists.
func (r *profileGorm) Create(ctx context.Context, p *entity.Profile) error {
	if err := gormtx.Conn(ctx, r.db).Create(p).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return usecase.ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *profileGorm) FindActiveByID(ctx context.Context, id uint) (*entity.Profile, error) {
	return r.findActive(ctx, "id = ?", id)
}

func (r *profileGorm) FindActiveByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	return r.findActive(ctx, "user_id = ?", userID)
}

func (r *profileGorm) findActive(ctx context.Context, cond string, arg uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := gormtx.Conn(ctx, r.db).
		Where(cond, arg).
		Where("is_deleted = ?", false).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save writes every column of an active profile, including nil pointers as NULL.
// A profile deleted since it was read yields usecase.ErrProfileNotFound and stays deleted.
func (r *profileGorm) Save(ctx context.Context, p *entity.Profile) error {
	result := gormtx.Conn(ctx, r.db).
		Model(p).
		Where("is_deleted = ?", false).
		Select("*").
		Updates(p)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrProfileNotFound
	}
	return nil
}

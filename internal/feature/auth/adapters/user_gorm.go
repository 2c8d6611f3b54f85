// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adoptamena_backend/internal/feature/auth/domain/entity"
	"adoptamena_backend/internal/feature/auth/usecase"
	"adoptamena_backend/internal/shared/dberr"
	"adoptamena_backend/internal/shared/gormtx"
)

// userGorm is the GORM implementation of usecase.UserRepository.
// Every lookup excludes soft-deleted rows.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm backed by db.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A duplicate email yields usecase.ErrEmailAlreadyExists.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := gormtx.Conn(ctx, r.db).Create(u).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns the active user with the given email.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := gormtx.Conn(ctx, r.db).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the active user with the given ID.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := gormtx.Conn(ctx, r.db).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// MarkVerified sets is_verified on an active user.
func (r *userGorm) MarkVerified(ctx context.Context, id uint) error {
	result := gormtx.Conn(ctx, r.db).
		Model(&entity.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_verified", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adoptamena_backend/internal/feature/profile/usecase"
	"adoptamena_backend/internal/shared/gormtx"
)

// ownerGorm reads profile owners from the users table owned by the auth feature.
type ownerGorm struct {
	db *gorm.DB
}

var _ usecase.OwnerReader = (*ownerGorm)(nil)

// NewOwnerGorm creates a new ownerGorm backed by db.
func NewOwnerGorm(db *gorm.DB) *ownerGorm {
	return &ownerGorm{db: db}
}

// EmailByUserID returns the email of an active user.
func (r *ownerGorm) EmailByUserID(ctx context.Context, userID uint) (string, error) {
	var row struct{ Email string }
	if err := gormtx.Conn(ctx, r.db).
		Table("users").
		Select("email").
		Where("id = ? AND is_deleted = ?", userID, false).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usecase.ErrUserNotFound
		}
		return "", err
	}
	return row.Email, nil
}

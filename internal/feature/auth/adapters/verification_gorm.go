package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adoptamena_backend/internal/feature/auth/domain/entity"
	"adoptamena_backend/internal/feature/auth/usecase"
	"adoptamena_backend/internal/shared/gormtx"
)

// verificationGorm stores verification tokens in the relational database.
// It is used when Redis is not available.
type verificationGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure verificationGorm implements VerificationRepository.
var _ usecase.VerificationRepository = (*verificationGorm)(nil)

// NewVerificationGorm creates a new instance of verificationGorm.
func NewVerificationGorm(db *gorm.DB) *verificationGorm {
	return &verificationGorm{db: db}
}

// Create persists a new token.
func (r *verificationGorm) Create(ctx context.Context, token *entity.VerificationToken) error {
	return gormtx.Conn(ctx, r.db).Create(VerificationTokenModelFromEntity(token)).Error
}

// Consume loads and deletes the token in one transaction.
func (r *verificationGorm) Consume(ctx context.Context, token string) (*entity.VerificationToken, error) {
	var model VerificationTokenModel
	err := gormtx.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token = ?", token).First(&model).Error; err != nil {
			return err
		}
		result := tx.Delete(&VerificationTokenModel{}, "token = ?", token)
		if result.Error != nil {
			return result.Error
		}
		// A concurrent consumer deleted it first.
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrVerificationTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// DeleteByUserID removes every token issued for a user.
func (r *verificationGorm) DeleteByUserID(ctx context.Context, userID uint) error {
	return gormtx.Conn(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&VerificationTokenModel{}).Error
}

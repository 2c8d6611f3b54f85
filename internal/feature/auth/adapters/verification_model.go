package adapters

import (
	"time"

	"adoptamena_backend/internal/feature/auth/domain/entity"
)

// VerificationTokenModel is the GORM model for the verification_tokens table.
type VerificationTokenModel struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (VerificationTokenModel) TableName() string {
	return "verification_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *VerificationTokenModel) ToEntity() *entity.VerificationToken {
	return &entity.VerificationToken{
		Token:     m.Token,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// VerificationTokenModelFromEntity converts a domain entity to a GORM model.
func VerificationTokenModelFromEntity(v *entity.VerificationToken) *VerificationTokenModel {
	return &VerificationTokenModel{
		Token:     v.Token,
		UserID:    v.UserID,
		CreatedAt: v.CreatedAt,
		ExpiresAt: v.ExpiresAt,
	}
}

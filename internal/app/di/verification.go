// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "adoptamena_backend/internal/feature/auth/adapters"
	"adoptamena_backend/internal/feature/auth/usecase"
	"adoptamena_backend/internal/platform/verification"
)

// NewVerificationRepository creates a VerificationRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the database.
func NewVerificationRepository(rdb *redis.Client, db *gorm.DB) usecase.VerificationRepository {
	if rdb != nil {
		return verification.NewVerificationRedis(rdb, "verify")
	}
	return authadapters.NewVerificationGorm(db)
}

package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	profileadapters "adoptamena_backend/internal/feature/profile/adapters"
	"adoptamena_backend/internal/feature/profile/usecase"
	"adoptamena_backend/internal/platform/cache"
)

// NewProfileRepository returns the gorm profile repository, wrapped in the Redis cache when rdb is set.
func NewProfileRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.ProfileRepository {
	repo := profileadapters.NewProfileGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingProfileRepository(rdb, ttl, repo, "profiles")
}

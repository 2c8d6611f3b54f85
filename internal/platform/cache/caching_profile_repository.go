// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adoptamena_backend/internal/feature/profile/domain/entity"
	"adoptamena_backend/internal/feature/profile/usecase"
)

const defaultProfileTTL = 5 * time.Minute

// CachingProfileRepository decorates a ProfileRepository with a Redis read-through cache.
// Only active profiles are cached; every Save evicts both keys of the profile.
type CachingProfileRepository struct {
	inner     usecase.ProfileRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProfileRepository = (*CachingProfileRepository)(nil)

// NewCachingProfileRepository decorates inner with Redis caching. A nil rdb disables caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "profiles".
func NewCachingProfileRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProfileRepository, namespace string) *CachingProfileRepository {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	if namespace == "" {
		namespace = "profiles"
	}
	return &CachingProfileRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	return c.inner.Create(ctx, p)
}

func (c *CachingProfileRepository) FindActiveByID(ctx context.Context, id uint) (*entity.Profile, error) {
	return c.readThrough(ctx, c.idKey(id), func() (*entity.Profile, error) {
		return c.inner.FindActiveByID(ctx, id)
	})
}

func (c *CachingProfileRepository) FindActiveByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	return c.readThrough(ctx, c.userKey(userID), func() (*entity.Profile, error) {
		return c.inner.FindActiveByUserID(ctx, userID)
	})
}

// Save writes through to the inner repository and evicts the cached copies.
func (c *CachingProfileRepository) Save(ctx context.Context, p *entity.Profile) error {
	if err := c.inner.Save(ctx, p); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a stale entry expires with its TTL.
	_ = c.rdb.Del(ctx, c.idKey(p.ID), c.userKey(p.UserID)).Err()
	return nil
}

func (c *CachingProfileRepository) readThrough(ctx context.Context, key string, load func() (*entity.Profile, error)) (*entity.Profile, error) {
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var p entity.Profile
		if err := json.Unmarshal(b, &p); err == nil {
			return &p, nil
		}
		// Corrupted entry.
		_ = c.rdb.Del(ctx, key).Err()
	}

	p, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(p); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return p, nil
}

func (c *CachingProfileRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

func (c *CachingProfileRepository) userKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}

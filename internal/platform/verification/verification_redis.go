// Package verification stores email verification tokens in Redis.
package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adoptamena_backend/internal/feature/auth/domain/entity"
	"adoptamena_backend/internal/feature/auth/usecase"
)

// VerificationRedis implements usecase.VerificationRepository using Redis.
// Tokens live under prefix:<token> with a TTL matching their expiry, and
// prefix:user:<id> indexes the outstanding tokens of each user.
type VerificationRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.VerificationRepository = (*VerificationRedis)(nil)

// NewVerificationRedis creates a new VerificationRedis instance.
func NewVerificationRedis(client *redis.Client, prefix string) *VerificationRedis {
	return &VerificationRedis{
		client: client,
		prefix: prefix,
	}
}

func (r *VerificationRedis) tokenKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

func (r *VerificationRedis) userTokensKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

// Create stores the token until its expiry.
func (r *VerificationRedis) Create(ctx context.Context, token *entity.VerificationToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal verification token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return errors.New("verification token already expired")
	}

	userKey := r.userTokensKey(token.UserID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.tokenKey(token.Token), data, ttl)
		pipe.SAdd(ctx, userKey, token.Token)
		pipe.Expire(ctx, userKey, ttl)
		return nil
	})
	return err
}

// Consume reads and deletes the token with a single GETDEL.
func (r *VerificationRedis) Consume(ctx context.Context, token string) (*entity.VerificationToken, error) {
	data, err := r.client.GetDel(ctx, r.tokenKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrVerificationTokenNotFound
		}
		return nil, err
	}

	var vt entity.VerificationToken
	if err := json.Unmarshal(data, &vt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification token: %w", err)
	}

	// The index entry is only bookkeeping; a stale member is harmless.
	r.client.SRem(ctx, r.userTokensKey(vt.UserID), token)
	return &vt, nil
}

// DeleteByUserID removes every outstanding token of the user.
func (r *VerificationRedis) DeleteByUserID(ctx context.Context, userID uint) error {
	userKey := r.userTokensKey(userID)
	tokens, err := r.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		keys = append(keys, r.tokenKey(t))
	}
	keys = append(keys, userKey)
	return r.client.Del(ctx, keys...).Err()
}

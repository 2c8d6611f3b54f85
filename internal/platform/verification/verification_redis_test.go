package verification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoptamena_backend/internal/feature/auth/domain/entity"
	"adoptamena_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func newToken(token string, userID uint, expiresIn time.Duration) *entity.VerificationToken {
	now := time.Now().Truncate(time.Second)
	return &entity.VerificationToken{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestVerificationRedis_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   *entity.VerificationToken
		wantErr bool
	}{
		{"success: stores token", newToken("tok-001", 1, time.Hour), false},
		{"failure: already expired", newToken("tok-002", 1, -time.Minute), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, mr := setupTestRedis(t)
			repo := NewVerificationRedis(client, "verify")

			err := repo.Create(context.Background(), tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, mr.Exists("verify:"+tt.token.Token))
				return
			}
			require.NoError(t, err)
			assert.True(t, mr.Exists("verify:tok-001"))
			assert.InDelta(t, time.Hour.Seconds(), mr.TTL("verify:tok-001").Seconds(), 5)

			members, err := mr.Members("verify:user:1")
			require.NoError(t, err)
			assert.Equal(t, []string{"tok-001"}, members)
		})
	}
}

func TestVerificationRedis_Consume(t *testing.T) {
	t.Parallel()
	client, mr := setupTestRedis(t)
	repo := NewVerificationRedis(client, "verify")
	ctx := context.Background()

	want := newToken("tok-abc", 7, time.Hour)
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.Consume(ctx, "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, want.UserID, got.UserID)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
	assert.False(t, mr.Exists("verify:tok-abc"))

	_, err = repo.Consume(ctx, "tok-abc")
	assert.ErrorIs(t, err, usecase.ErrVerificationTokenNotFound, "tokens are single use")

	_, err = repo.Consume(ctx, "unknown")
	assert.ErrorIs(t, err, usecase.ErrVerificationTokenNotFound)
}

func TestVerificationRedis_ExpiredByTTL(t *testing.T) {
	t.Parallel()
	client, mr := setupTestRedis(t)
	repo := NewVerificationRedis(client, "verify")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newToken("tok-ttl", 2, time.Minute)))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Consume(ctx, "tok-ttl")
	assert.ErrorIs(t, err, usecase.ErrVerificationTokenNotFound)
}

func TestVerificationRedis_DeleteByUserID(t *testing.T) {
	t.Parallel()
	client, mr := setupTestRedis(t)
	repo := NewVerificationRedis(client, "verify")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newToken("a", 1, time.Hour)))
	require.NoError(t, repo.Create(ctx, newToken("b", 1, time.Hour)))
	require.NoError(t, repo.Create(ctx, newToken("c", 2, time.Hour)))

	require.NoError(t, repo.DeleteByUserID(ctx, 1))

	assert.False(t, mr.Exists("verify:a"))
	assert.False(t, mr.Exists("verify:b"))
	assert.False(t, mr.Exists("verify:user:1"))
	assert.True(t, mr.Exists("verify:c"))

	// No tokens is not an error.
	assert.NoError(t, repo.DeleteByUserID(ctx, 99))
}

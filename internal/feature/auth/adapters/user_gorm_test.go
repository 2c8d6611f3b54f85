package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"adoptamena_backend/internal/feature/auth/domain/entity"
	"adoptamena_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&entity.User{}, &VerificationTokenModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func newUser(email string) *entity.User {
	return &entity.User{Email: email, Password: "hashed_password", Role: entity.RoleUser}
}

func TestNewUserGorm(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserGorm(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		user := newUser("test@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.IsVerified)
		assert.False(t, user.IsDeleted)
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		require.NoError(t, repo.Create(context.Background(), newUser("duplicate@example.com")))
		err := repo.Create(context.Background(), newUser("duplicate@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("email of a deleted user stays reserved", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		deleted := newUser("gone@example.com")
		deleted.IsDeleted = true
		require.NoError(t, db.Create(deleted).Error)

		err := repo.Create(context.Background(), newUser("gone@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)

	active := newUser("active@example.com")
	require.NoError(t, repo.Create(context.Background(), active))

	deleted := newUser("deleted@example.com")
	deleted.IsDeleted = true
	require.NoError(t, db.Create(deleted).Error)

	tests := []struct {
		name    string
		email   string
		wantID  uint
		wantErr error
	}{
		{"active user found", "active@example.com", active.ID, nil},
		{"unknown email", "missing@example.com", 0, usecase.ErrUserNotFound},
		{"soft-deleted user excluded", "deleted@example.com", 0, usecase.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, found.ID)
			assert.Equal(t, entity.RoleUser, found.Role)
		})
	}
}

func TestUserGorm_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)

	user := newUser("byid@example.com")
	require.NoError(t, repo.Create(context.Background(), user))

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "byid@example.com", found.Email)

	_, err = repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)

	require.NoError(t, db.Model(user).Update("is_deleted", true).Error)
	_, err = repo.FindByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestUserGorm_MarkVerified(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)

	user := newUser("verify@example.com")
	require.NoError(t, repo.Create(context.Background(), user))

	require.NoError(t, repo.MarkVerified(context.Background(), user.ID))

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsVerified)

	// Already verified: the row still matches, so this is not an error.
	assert.NoError(t, repo.MarkVerified(context.Background(), user.ID))

	assert.ErrorIs(t, repo.MarkVerified(context.Background(), 4242), usecase.ErrUserNotFound)
}

func TestVerificationGorm(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVerificationGorm(db)
	ctx := context.Background()
	now := time.Now()

	tokens := []*entity.VerificationToken{
		{Token: "tok-a", UserID: 1, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
		{Token: "tok-b", UserID: 1, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
		{Token: "tok-c", UserID: 2, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	for _, tok := range tokens {
		require.NoError(t, repo.Create(ctx, tok))
	}

	t.Run("consume returns token once", func(t *testing.T) {
		got, err := repo.Consume(ctx, "tok-c")
		require.NoError(t, err)
		assert.Equal(t, uint(2), got.UserID)
		assert.WithinDuration(t, now.Add(time.Hour), got.ExpiresAt, time.Second)

		_, err = repo.Consume(ctx, "tok-c")
		assert.ErrorIs(t, err, usecase.ErrVerificationTokenNotFound)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := repo.Consume(ctx, "nope")
		assert.ErrorIs(t, err, usecase.ErrVerificationTokenNotFound)
	})

	t.Run("delete by user id", func(t *testing.T) {
		require.NoError(t, repo.DeleteByUserID(ctx, 1))

		var count int64
		require.NoError(t, db.Model(&VerificationTokenModel{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

package adapters

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"adoptamena_backend/internal/feature/animal/domain/entity"
	"adoptamena_backend/internal/feature/animal/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Animal{}))
	return db
}

func TestAnimalGorm_CRUD(t *testing.T) {
	repo := NewAnimalGorm(setupTestDB(t))
	ctx := context.Background()

	a := &entity.Animal{Name: "Firulais"}
	require.NoError(t, repo.Create(ctx, a))
	require.NotZero(t, a.ID)

	got, err := repo.FindActiveByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Firulais", got.Name)
	assert.False(t, got.IsDeleted)

	got.Name = "Firu"
	require.NoError(t, repo.Save(ctx, got))
	got, err = repo.FindActiveByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Firu", got.Name)

	got.IsDeleted = true
	require.NoError(t, repo.Save(ctx, got))
	_, err = repo.FindActiveByID(ctx, a.ID)
	assert.ErrorIs(t, err, usecase.ErrAnimalNotFound)

	_, err = repo.FindActiveByID(ctx, 999)
	assert.ErrorIs(t, err, usecase.ErrAnimalNotFound)
}

func TestAnimalGorm_ListActive(t *testing.T) {
	repo := NewAnimalGorm(setupTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		a := &entity.Animal{Name: fmt.Sprintf("animal-%d", i)}
		require.NoError(t, repo.Create(ctx, a))
		if i == 2 {
			a.IsDeleted = true
			require.NoError(t, repo.Save(ctx, a))
		}
	}

	all, err := repo.ListActive(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "animal-1", all[0].Name)
	assert.Equal(t, "animal-3", all[1].Name)

	page, err := repo.ListActive(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "animal-4", page[0].Name)
	assert.Equal(t, "animal-5", page[1].Name)

	empty, err := repo.ListActive(ctx, 10, 50)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

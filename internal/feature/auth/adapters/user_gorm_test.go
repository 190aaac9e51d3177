package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"teamacy_backend/internal/feature/auth/domain/entity"
	"teamacy_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for tests.
// TranslateError matches the production configuration so duplicate keys
// surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedUser creates a user row for tests.
func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: "hashed-password",
		Role:     role,
	}
	err := db.Create(user).Error
	require.NoError(t, err, "failed to seed user")

	return user
}

func TestUserGorm_Create(t *testing.T) {
	t.Parallel()

	t.Run("success: inserts a user", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := &entity.User{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "hash",
			Role:     entity.RoleUser,
		}
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err)
		assert.NotZero(t, user.ID, "expected the store to assign an ID")
	})

	t.Run("failure: duplicate email returns ErrEmailAlreadyExists", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewUserRepository(db)
		seedUser(t, db, "Alice", "alice@example.com", entity.RoleUser)

		err := repo.Create(context.Background(), &entity.User{
			Name:     "Other Alice",
			Email:    "alice@example.com",
			Password: "hash",
			Role:     entity.RoleUser,
		})

		assert.True(t, errors.Is(err, usecase.ErrEmailAlreadyExists), "expected ErrEmailAlreadyExists, got %v", err)
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Parallel()

	t.Run("success: returns the matching user", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewUserRepository(db)
		seeded := seedUser(t, db, "Bob", "bob@example.com", entity.RoleAdmin)

		user, err := repo.FindByEmail(context.Background(), "bob@example.com")

		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
		assert.Equal(t, "Bob", user.Name)
		assert.Equal(t, entity.RoleAdmin, user.Role)
	})

	t.Run("failure: unknown email returns ErrUserNotFound", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewUserRepository(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.True(t, errors.Is(err, usecase.ErrUserNotFound), "expected ErrUserNotFound, got %v", err)
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Parallel()

	t.Run("success: returns the matching user", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewUserRepository(db)
		seeded := seedUser(t, db, "Carol", "carol@example.com", entity.RoleUser)

		user, err := repo.FindByID(context.Background(), seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", user.Email)
	})

	t.Run("failure: unknown id returns ErrUserNotFound", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewUserRepository(db)

		_, err := repo.FindByID(context.Background(), 12345)

		assert.True(t, errors.Is(err, usecase.ErrUserNotFound), "expected ErrUserNotFound, got %v", err)
	})
}

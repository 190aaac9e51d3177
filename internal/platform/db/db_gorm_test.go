package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "teamacy_backend/internal/feature/auth/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&authentity.User{}))
	return conn
}

func countAdmins(t *testing.T, conn *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, conn.Model(&authentity.User{}).
		Where("role = ?", authentity.RoleAdmin).
		Count(&count).Error)
	return count
}

func TestSeedAdmin(t *testing.T) {
	t.Run("creates the admin from environment variables", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "admin@example.com")
		t.Setenv("ADMIN_NAME", "Site Admin")
		t.Setenv("ADMIN_PASSWORD", "super-secret-password")

		conn := setupTestDB(t)
		require.NoError(t, SeedAdmin(conn))

		var admin authentity.User
		require.NoError(t, conn.Where("email = ?", "admin@example.com").First(&admin).Error)
		assert.Equal(t, "Site Admin", admin.Name)
		assert.Equal(t, authentity.RoleAdmin, admin.Role)
		// The password is stored hashed, never in the clear.
		assert.NotEqual(t, "super-secret-password", admin.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("super-secret-password")))
	})

	t.Run("mixed-case email is stored lowercased", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "  Admin@Example.com ")
		t.Setenv("ADMIN_PASSWORD", "super-secret-password")

		conn := setupTestDB(t)
		require.NoError(t, SeedAdmin(conn))

		// The login path looks up the normalized form; the seeded row must
		// match it or the admin can never sign in.
		var admin authentity.User
		require.NoError(t, conn.Where("email = ?", "admin@example.com").First(&admin).Error)
		assert.Equal(t, "admin@example.com", admin.Email)
		assert.Equal(t, authentity.RoleAdmin, admin.Role)

		// Re-seeding with a different casing still counts as the same admin.
		t.Setenv("ADMIN_EMAIL", "ADMIN@EXAMPLE.COM")
		require.NoError(t, SeedAdmin(conn))
		assert.EqualValues(t, 1, countAdmins(t, conn))
	})

	t.Run("defaults the name when ADMIN_NAME is unset", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "admin@example.com")
		t.Setenv("ADMIN_NAME", "")
		t.Setenv("ADMIN_PASSWORD", "super-secret-password")

		conn := setupTestDB(t)
		require.NoError(t, SeedAdmin(conn))

		var admin authentity.User
		require.NoError(t, conn.Where("email = ?", "admin@example.com").First(&admin).Error)
		assert.Equal(t, "Admin", admin.Name)
	})

	t.Run("is a no-op when credentials are unset", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "")
		t.Setenv("ADMIN_PASSWORD", "")

		conn := setupTestDB(t)
		require.NoError(t, SeedAdmin(conn))
		assert.Zero(t, countAdmins(t, conn))
	})

	t.Run("does not duplicate an existing admin", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "admin@example.com")
		t.Setenv("ADMIN_PASSWORD", "super-secret-password")

		conn := setupTestDB(t)
		require.NoError(t, SeedAdmin(conn))
		require.NoError(t, SeedAdmin(conn))
		assert.EqualValues(t, 1, countAdmins(t, conn))
	})

	t.Run("skips seeding when any admin already exists", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "new-admin@example.com")
		t.Setenv("ADMIN_PASSWORD", "super-secret-password")

		conn := setupTestDB(t)
		existing := authentity.User{
			Name: "Existing", Email: "old-admin@example.com",
			Password: "hash", Role: authentity.RoleAdmin,
		}
		require.NoError(t, conn.Create(&existing).Error)

		require.NoError(t, SeedAdmin(conn))

		var count int64
		require.NoError(t, conn.Model(&authentity.User{}).
			Where("email = ?", "new-admin@example.com").Count(&count).Error)
		assert.Zero(t, count)
	})
}

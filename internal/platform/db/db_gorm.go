// Package db opens the application database and prepares the schema.
package db

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "teamacy_backend/internal/feature/auth/domain/entity"
	msgentity "teamacy_backend/internal/feature/messages/domain/entity"
)

// OpenDB connects to Postgres using the DB_* environment variables, retrying
// for up to 60 seconds so the server survives a database that is still
// starting. TranslateError is enabled so unique constraint violations surface
// as gorm.ErrDuplicatedKey regardless of driver.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&msgentity.Message{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	if err := SeedAdmin(db); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	return db
}

// SeedAdmin creates the dashboard admin account from ADMIN_EMAIL, ADMIN_NAME
// and ADMIN_PASSWORD when no admin exists yet. Seeding is skipped entirely
// when the variables are unset, so tests and local runs without credentials
// still work. The email is lowercased and trimmed before storage so the
// seeded account matches the normalized lookup done at login.
func SeedAdmin(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	var count int64
	if err := db.Model(&authentity.User{}).
		Where("role = ?", authentity.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := authentity.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     authentity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	slog.Info("admin account created", "email", email)
	return nil
}

// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles a user account can hold. RoleAdmin unlocks the message inbox.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name shown in the UI after login.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is stored lowercased.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash for the user.
	// This never stores plaintext and never serializes to JSON.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role is either RoleUser or RoleAdmin. Immutable after creation.
	Role string `gorm:"size:20;not null;default:user" json:"role"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}

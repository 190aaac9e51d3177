// Package jwtmw provides JWT issuing and the authentication middleware.
package jwtmw

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Environment variable keys for token configuration.
const (
	EnvKeyJWTSecret          = "JWT_SECRET"
	EnvKeyJWTExpirationHours = "JWT_EXPIRATION_HOURS"
)

// defaultExpiration applies when JWT_EXPIRATION_HOURS is unset or invalid.
const defaultExpiration = 24 * time.Hour

// ExpirationFromEnv returns the configured token lifetime.
func ExpirationFromEnv() time.Duration {
	raw := os.Getenv(EnvKeyJWTExpirationHours)
	if raw == "" {
		return defaultExpiration
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return defaultExpiration
	}
	return time.Duration(hours) * time.Hour
}

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token carrying identity and role.
	GenerateToken(userID uint, email, role string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT token with standard claims plus the
// user's role. The role is fixed at issuance and not re-checked against the
// store until the next login.
func (g *generator) GenerateToken(userID uint, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
		"role":  role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Package api defines the shared response envelopes used by all HTTP handlers.
package api

// ErrorResponse is the body returned on any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned on simple successful operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserProfile is the redacted user object returned on login.
// It never carries the password hash.
type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenResponse is the body returned on a successful login.
type TokenResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

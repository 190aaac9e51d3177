// Package mailer provides a client for the Resend transactional email API,
// used to forward submitted messages to the business inbox.
package mailer

import (
	"os"
	"time"
)

// Config holds configuration for the Resend API client.
type Config struct {
	APIKey   string        // API key for authentication
	BaseURL  string        // Base URL for the API (e.g., "https://api.resend.com")
	Sender   string        // From address for outgoing mail
	NotifyTo string        // Business inbox receiving enquiry/feedback notifications
	Timeout  time.Duration // HTTP request timeout
}

// LoadConfig loads Resend configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("RESEND_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return Config{
		APIKey:   os.Getenv("RESEND_API_KEY"),
		BaseURL:  baseURL,
		Sender:   os.Getenv("SENDER_EMAIL"),
		NotifyTo: os.Getenv("NOTIFY_EMAIL"),
		Timeout:  10 * time.Second,
	}
}

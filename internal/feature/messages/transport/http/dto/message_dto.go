// Package dto defines data transfer objects for the messages HTTP API.
package dto

import (
	"time"

	"teamacy_backend/internal/feature/messages/domain/entity"
)

// SubmitMessageReq represents the request body for the message submission endpoint.
// Contact details are client-supplied because submissions are anonymous.
type SubmitMessageReq struct {
	Type    string `json:"type" binding:"required,oneof=enquiry feedback"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// MessageItem represents a stored message in API responses.
type MessageItem struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEntity converts a message entity to its API representation.
func FromEntity(m *entity.Message) MessageItem {
	return MessageItem{
		ID:        m.ID,
		Type:      m.Type,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		CreatedAt: m.CreatedAt,
	}
}

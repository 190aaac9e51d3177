package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"teamacy_backend/internal/feature/messages/domain/entity"
)

// MessageRepository abstracts the persistence layer for messages.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MessageRepository interface {
	// Create persists a new message. The store assigns ID and CreatedAt.
	Create(ctx context.Context, m *entity.Message) error

	// List returns messages newest first. An empty msgType returns all
	// messages; otherwise only messages of that type.
	List(ctx context.Context, msgType string) ([]entity.Message, error)
}

// Notifier forwards a stored message to the business inbox.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/mailer).
type Notifier interface {
	NotifyNewMessage(ctx context.Context, m *entity.Message) error
}

// SubmitInput carries the fields of a new submission.
// Submissions are anonymous: the contact identity is whatever the client
// supplies, and the endpoint never reads the Authorization header.
type SubmitInput struct {
	Type    string
	Name    string
	Email   string
	Subject string
	Body    string
}

// MessageUsecase implements intake and admin listing of messages.
type MessageUsecase struct {
	messages MessageRepository
	notifier Notifier // optional; nil disables notifications
}

// NewMessageUsecase creates a new MessageUsecase. notifier may be nil when
// outbound email is not configured.
func NewMessageUsecase(messages MessageRepository, notifier Notifier) *MessageUsecase {
	return &MessageUsecase{messages: messages, notifier: notifier}
}

// Submit validates and stores a new message, then notifies the business
// inbox best-effort. A notification failure is logged and never fails the
// submission. The body is stored exactly as received.
func (u *MessageUsecase) Submit(ctx context.Context, in SubmitInput) (*entity.Message, error) {
	if !entity.ValidType(in.Type) {
		return nil, ErrInvalidMessageType
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, ErrMissingField
	}

	m := &entity.Message{
		Type:    in.Type,
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Body,
	}
	if err := u.messages.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if u.notifier != nil {
		if err := u.notifier.NotifyNewMessage(ctx, m); err != nil {
			slog.Warn("message notification failed", "error", err, "message_id", m.ID, "type", m.Type)
		}
	}

	return m, nil
}

// List returns stored messages for the admin inbox, newest first.
// msgType may be empty (all messages) or one of the enumerated types; the
// filter is applied at the store so tab counts are exact.
func (u *MessageUsecase) List(ctx context.Context, msgType string) ([]entity.Message, error) {
	if msgType != "" && !entity.ValidType(msgType) {
		return nil, ErrInvalidTypeFilter
	}
	return u.messages.List(ctx, msgType)
}

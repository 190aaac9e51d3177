// Package adapters provides the repository implementations for the messages feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"teamacy_backend/internal/feature/messages/domain/entity"
	"teamacy_backend/internal/feature/messages/usecase"
)

// messageGorm is the GORM implementation of the MessageRepository interface.
type messageGorm struct {
	db *gorm.DB
}

var _ usecase.MessageRepository = (*messageGorm)(nil)

// NewMessageRepository creates a new messageGorm instance with the given DB connection.
func NewMessageRepository(db *gorm.DB) *messageGorm {
	return &messageGorm{db: db}
}

// Create inserts a message. Each insert is a single atomic row write.
func (r *messageGorm) Create(ctx context.Context, m *entity.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns messages ordered newest first (id tiebreak keeps same-second
// inserts stable). An empty msgType returns all messages.
func (r *messageGorm) List(ctx context.Context, msgType string) ([]entity.Message, error) {
	q := r.db.WithContext(ctx).Model(&entity.Message{})
	if msgType != "" {
		q = q.Where("type = ?", msgType)
	}
	var messages []entity.Message
	if err := q.Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

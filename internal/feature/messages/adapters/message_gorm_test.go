package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"teamacy_backend/internal/feature/messages/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Message{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedMessage creates a message row with an explicit creation time so
// ordering assertions are deterministic.
func seedMessage(t *testing.T, db *gorm.DB, msgType, subject string, createdAt time.Time) *entity.Message {
	t.Helper()

	m := &entity.Message{
		Type:      msgType,
		Name:      "Seed User",
		Email:     "seed@example.com",
		Subject:   subject,
		Body:      "seed body",
		CreatedAt: createdAt,
	}
	err := db.Create(m).Error
	require.NoError(t, err, "failed to seed message")

	return m
}

func TestMessageGorm_Create(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	m := &entity.Message{
		Type:    entity.TypeEnquiry,
		Name:    "Test Customer",
		Email:   "customer@example.com",
		Subject: "Enquiry",
		Body:    "Hello",
	}
	err := repo.Create(context.Background(), m)

	require.NoError(t, err)
	assert.NotZero(t, m.ID, "expected the store to assign an ID")
	assert.False(t, m.CreatedAt.IsZero(), "expected the store to assign CreatedAt")
}

func TestMessageGorm_List(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		filter           string
		expectedSubjects []string
	}{
		{
			name:   "no filter returns all messages newest first",
			filter: "",
			// Seeded below: e1 (+0s), f1 (+1s), e2 (+2s)
			expectedSubjects: []string{"e2", "f1", "e1"},
		},
		{
			name:             "enquiry filter returns only enquiries",
			filter:           entity.TypeEnquiry,
			expectedSubjects: []string{"e2", "e1"},
		},
		{
			name:             "feedback filter returns only feedback",
			filter:           entity.TypeFeedback,
			expectedSubjects: []string{"f1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewMessageRepository(db)

			seedMessage(t, db, entity.TypeEnquiry, "e1", base)
			seedMessage(t, db, entity.TypeFeedback, "f1", base.Add(time.Second))
			seedMessage(t, db, entity.TypeEnquiry, "e2", base.Add(2*time.Second))

			messages, err := repo.List(context.Background(), tt.filter)

			require.NoError(t, err)
			require.Len(t, messages, len(tt.expectedSubjects))
			for i, subject := range tt.expectedSubjects {
				assert.Equal(t, subject, messages[i].Subject)
			}
		})
	}

	t.Run("empty store returns an empty list", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewMessageRepository(db)

		messages, err := repo.List(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("same-timestamp messages fall back to id order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewMessageRepository(db)

		first := seedMessage(t, db, entity.TypeEnquiry, "first", base)
		second := seedMessage(t, db, entity.TypeEnquiry, "second", base)

		messages, err := repo.List(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, second.ID, messages[0].ID)
		assert.Equal(t, first.ID, messages[1].ID)
	})
}

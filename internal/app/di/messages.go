// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	msgadapters "teamacy_backend/internal/feature/messages/adapters"
	"teamacy_backend/internal/feature/messages/usecase"
	"teamacy_backend/internal/platform/cache"
	infrahttp "teamacy_backend/internal/platform/http"
	"teamacy_backend/internal/platform/mailer"
)

// listCacheTTL bounds how long an admin listing may be served from Redis.
// Inserts invalidate eagerly, so the TTL only covers missed invalidations.
const listCacheTTL = 5 * time.Minute

// NewMessageRepository creates a MessageRepository implementation.
// If Redis is available, the GORM repository is wrapped with the caching
// decorator; otherwise it is returned directly.
func NewMessageRepository(rdb *redis.Client, db *gorm.DB) usecase.MessageRepository {
	repo := msgadapters.NewMessageRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingMessageRepository(rdb, listCacheTTL, repo, "messages")
}

// NewNotifier creates the Resend-backed notifier, or nil when outbound email
// is not configured. Intake treats a nil notifier as "notifications disabled".
func NewNotifier() usecase.Notifier {
	cfg := mailer.LoadConfig()
	if cfg.APIKey == "" {
		slog.Warn("RESEND_API_KEY is not set. Running without email notifications.")
		return nil
	}
	return mailer.NewResendMailer(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

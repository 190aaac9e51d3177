// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"time"

	"github.com/redis/go-redis/v9"

	"teamacy_backend/internal/feature/messages/domain/entity"
	"teamacy_backend/internal/feature/messages/usecase"
)

// CachingMessageRepository decorates a MessageRepository with Redis caching
// of the admin inbox listings. Every insert invalidates the whole namespace
// so filtered counts stay exact across calls.
type CachingMessageRepository struct {
	inner     usecase.MessageRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MessageRepository = (*CachingMessageRepository)(nil)

// NewCachingMessageRepository decorates a MessageRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "messages".
func NewCachingMessageRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MessageRepository, namespace string) *CachingMessageRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "messages"
	}
	return &CachingMessageRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a message and invalidates all cached listings.
func (c *CachingMessageRepository) Create(ctx context.Context, m *entity.Message) error {
	// First insert into the underlying repository
	if err := c.inner.Create(ctx, m); err != nil {
		return err
	}
	// Exit early if Redis is not configured
	if c.rdb == nil {
		return nil
	}

	// Best effort: a stale listing is worse than a cold cache, but an
	// invalidation failure must not fail the submission.
	_ = c.deleteByPattern(ctx, c.namespace+":*")
	return nil
}

// List retrieves messages, checking cache first then falling back to the database.
func (c *CachingMessageRepository) List(ctx context.Context, msgType string) ([]entity.Message, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx, msgType)
	}

	key := c.cacheKey(msgType)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Message
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, msgType)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a listing. The empty filter maps to
// "all" so it cannot collide with a type value.
func (c *CachingMessageRepository) cacheKey(msgType string) string {
	if msgType == "" {
		msgType = "all"
	}
	return fmt.Sprintf("%s:%s", c.namespace, msgType)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMessageRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionCache stores admin session capabilities in Redis. A session exists
// exactly while its key lives; revocation is key deletion, expiry is TTL.
type SessionCache struct {
	redis *RedisClient
}

// NewSessionCache creates a new SessionCache.
func NewSessionCache(redis *RedisClient) *SessionCache {
	return &SessionCache{redis: redis}
}

func (c *SessionCache) key(sessionID string) string {
	return fmt.Sprintf("admin:session:%s", sessionID)
}

// Create issues a new session id and stores it with the given TTL.
func (c *SessionCache) Create(ctx context.Context, ttl time.Duration) (string, error) {
	sessionID := uuid.New().String()
	issuedAt := time.Now().UTC().Format(time.RFC3339)
	if err := c.redis.Set(ctx, c.key(sessionID), issuedAt, ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return sessionID, nil
}

// Exists reports whether the session id resolves to a live session.
func (c *SessionCache) Exists(ctx context.Context, sessionID string) (bool, error) {
	return c.redis.Exists(ctx, c.key(sessionID))
}

// Revoke removes a session. Revoking an unknown session is a no-op.
func (c *SessionCache) Revoke(ctx context.Context, sessionID string) error {
	return c.redis.Delete(ctx, c.key(sessionID))
}

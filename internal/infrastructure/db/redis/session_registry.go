package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRegistry is a Redis-backed alternative to the in-process registry,
// for running more than one API instance against a shared session view.
// Key format: session:<user_id>, a hash of {token, created_at, last_active},
// expiring with the token TTL so stale entries clean themselves up.
type SessionRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRegistry wraps client. Entries live for ttl, which should match
// the token TTL; zero disables expiry.
func NewSessionRegistry(client *redis.Client, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{client: client, ttl: ttl}
}

func (r *SessionRegistry) CreateSession(ctx context.Context, userID, token string) error {
	key := r.key(userID)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, "token", token, "created_at", now, "last_active", now)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRegistry) RemoveSession(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (r *SessionRegistry) CurrentToken(ctx context.Context, userID string) (string, bool, error) {
	token, err := r.client.HGet(ctx, r.key(userID), "token").Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session lookup: %w", err)
	}
	return token, true, nil
}

func (r *SessionRegistry) Touch(ctx context.Context, userID string) error {
	key := r.key(userID)
	// Only refresh an existing entry; a touch must never resurrect one.
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}
	return r.client.HSet(ctx, key, "last_active", time.Now().UTC().Format(time.RFC3339Nano)).Err()
}

func (r *SessionRegistry) key(userID string) string {
	return "session:" + userID
}

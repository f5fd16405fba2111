package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fightcard/internal/shared"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps live sessions: session id -> user id, with a TTL.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (userID string, err error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client redis.UniversalClient
}

// NewRedisSessionStore creates a SessionStore on top of a go-redis client
func NewRedisSessionStore(client redis.UniversalClient) SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w: %w", shared.ErrStorageUnavailable, err)
	}
	return nil
}

// Lookup returns shared.ErrNotFound for unknown or expired sessions.
func (s *redisSessionStore) Lookup(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("lookup session: %w", shared.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w: %w", shared.ErrStorageUnavailable, err)
	}
	return userID, nil
}

// Delete is idempotent: removing an unknown session is not an error.
func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w: %w", shared.ErrStorageUnavailable, err)
	}
	return nil
}

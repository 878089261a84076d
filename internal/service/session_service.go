package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionService keeps the active session registry in Redis so sign-out
// actually revokes tokens before they expire
type SessionService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(redisURL string, ttlSeconds int) (*SessionService, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SessionService{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func sessionKey(jti string) string {
	return "session:" + jti
}

// Put records an active session keyed by the token's jti. The key expires
// with the token so abandoned sessions clean themselves up.
func (s *SessionService) Put(ctx context.Context, jti string, userID uuid.UUID) error {
	if err := s.client.Set(ctx, sessionKey(jti), userID.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns the user bound to an active session, or false when the session
// was signed out or expired
func (s *SessionService) Get(ctx context.Context, jti string) (uuid.UUID, bool, error) {
	val, err := s.client.Get(ctx, sessionKey(jti)).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to read session: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to parse session user: %w", err)
	}

	return userID, true, nil
}

// Delete revokes a session
func (s *SessionService) Delete(ctx context.Context, jti string) error {
	if err := s.client.Del(ctx, sessionKey(jti)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *SessionService) Close() error {
	return s.client.Close()
}

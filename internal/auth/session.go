package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionManager stores admin login sessions as bearer tokens in Redis.
type SessionManager struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(client *redis.Client, ttl time.Duration) *SessionManager {
	return &SessionManager{client: client, prefix: "session:", ttl: ttl}
}

// Create mints a new session token for the given user email.
func (sm *SessionManager) Create(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()
	if err := sm.client.Set(ctx, sm.prefix+token, email, sm.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a token to the email it was issued for. Expired or
// unknown tokens resolve to ErrInvalidCredentials.
func (sm *SessionManager) Lookup(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidCredentials
	}
	email, err := sm.client.Get(ctx, sm.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	return email, nil
}

// Destroy invalidates a session token. Destroying an unknown token is a
// no-op.
func (sm *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := sm.client.Del(ctx, sm.prefix+token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

package redisstore

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

const csrfKeyPrefix = "csrf:"

type csrfStore struct {
	client *redis.Client
}

// NewCsrfTokenStore creates a Redis-backed CSRF token store.
func NewCsrfTokenStore(client *redis.Client) repository.CsrfTokenStore {
	return &csrfStore{client: client}
}

func csrfKey(sessionID string) string { return csrfKeyPrefix + sessionID }

// NewToken generates a random opaque CSRF token.
func NewToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Issue binds a token to the session if none is bound yet and returns the
// bound token. SETNX makes concurrent issuance converge on one winner, so
// a token handed to one request is never invalidated by another.
func (s *csrfStore) Issue(ctx context.Context, sessionID string, ttl time.Duration) (string, error) {
	candidate, err := NewToken()
	if err != nil {
		return "", err
	}

	key := csrfKey(sessionID)
	set, err := s.client.SetNX(ctx, key, candidate, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to bind csrf token: %w", err)
	}
	if set {
		return candidate, nil
	}

	existing, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// Bound token expired between SETNX and GET; retry once.
		return s.Issue(ctx, sessionID, ttl)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load csrf token: %w", err)
	}
	return existing, nil
}

func (s *csrfStore) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, csrfKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load csrf token: %w", err)
	}
	return token, nil
}

func (s *csrfStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, csrfKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete csrf token: %w", err)
	}
	return nil
}

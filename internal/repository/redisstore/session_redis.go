// Package redisstore implements the session and CSRF token stores on
// Redis. Key-level atomicity of GET/SET/DEL gives the required semantics:
// a lookup racing a logout sees the session fully present or fully gone.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

const sessionKeyPrefix = "session:"

type sessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client *redis.Client) repository.SessionStore {
	return &sessionStore{client: client}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }

func (s *sessionStore) Create(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *sessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	// Redis expiry is authoritative, but guard against clock drift between
	// the record and the key TTL.
	if session.Expired(time.Now()) {
		return nil, nil
	}

	return &session, nil
}

func (s *sessionStore) UpdateScope(ctx context.Context, id string, scope domain.NurseryScope) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found")
	}

	session.Scope = scope
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	// KeepTTL preserves the original expiry.
	if err := s.client.Set(ctx, sessionKey(id), payload, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("failed to update session scope: %w", err)
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, id string) error {
	// DEL of a missing key is a no-op, which makes logout idempotent.
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

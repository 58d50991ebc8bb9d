// Package memory provides in-process implementations of the session and
// CSRF token stores. They back single-instance deployments without Redis
// and the test suites.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository/redisstore"
)

var errSessionNotFound = errors.New("session not found")

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.Session)}
}

var _ repository.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) Create(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || session.Expired(time.Now()) {
		return nil, nil
	}

	copied := session
	return &copied, nil
}

func (s *SessionStore) UpdateScope(_ context.Context, id string, scope domain.NurseryScope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return errSessionNotFound
	}
	session.Scope = scope
	s.sessions[id] = session
	return nil
}

// Delete removes the session under the write lock, so a concurrent Get
// observes the session fully present or fully gone. Deleting a missing
// session is a no-op.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type csrfEntry struct {
	token     string
	expiresAt time.Time
}

type CsrfTokenStore struct {
	mu     sync.Mutex
	tokens map[string]csrfEntry
}

func NewCsrfTokenStore() *CsrfTokenStore {
	return &CsrfTokenStore{tokens: make(map[string]csrfEntry)}
}

var _ repository.CsrfTokenStore = (*CsrfTokenStore)(nil)

// Issue binds a token to the session on first call and returns the same
// token thereafter, serialized under the mutex so concurrent issuance
// cannot hand out conflicting tokens.
func (s *CsrfTokenStore) Issue(_ context.Context, sessionID string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if entry, ok := s.tokens[sessionID]; ok && now.Before(entry.expiresAt) {
		return entry.token, nil
	}

	token, err := redisstore.NewToken()
	if err != nil {
		return "", err
	}
	s.tokens[sessionID] = csrfEntry{token: token, expiresAt: now.Add(ttl)}
	return token, nil
}

func (s *CsrfTokenStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[sessionID]
	if !ok || !time.Now().Before(entry.expiresAt) {
		return "", nil
	}
	return entry.token, nil
}

func (s *CsrfTokenStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sessionID)
	return nil
}

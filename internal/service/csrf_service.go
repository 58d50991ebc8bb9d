package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

// CsrfService issues and validates per-session anti-CSRF tokens.
//
// Rotation policy: fixed-per-session. A token is minted once per session
// and holds until logout or expiry. Validation always checks the currently
// bound token, which is what the invariants require; rotation-per-use was
// considered and rejected because it forces serialized issue/validate per
// session to avoid racing concurrent tabs.
type CsrfService struct {
	store repository.CsrfTokenStore
	ttl   time.Duration
}

func NewCsrfService(store repository.CsrfTokenStore, ttl time.Duration) *CsrfService {
	return &CsrfService{store: store, ttl: ttl}
}

// IssueToken returns the token bound to the session, minting one on first
// use.
func (s *CsrfService) IssueToken(ctx context.Context, sessionID string) (string, error) {
	token, err := s.store.Issue(ctx, sessionID, s.ttl)
	if err != nil {
		return "", fmt.Errorf("failed to issue csrf token: %w", err)
	}
	return token, nil
}

// Validate reports whether the presented token matches the one bound to
// the session. A nil session, an unbound session, or a mismatch all fail;
// a token issued for one session never validates against another.
func (s *CsrfService) Validate(ctx context.Context, session *domain.Session, presented string) (bool, error) {
	if session == nil || presented == "" {
		return false, nil
	}

	bound, err := s.store.Get(ctx, session.ID)
	if err != nil {
		return false, fmt.Errorf("failed to load csrf token: %w", err)
	}
	if bound == "" {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(bound), []byte(presented)) == 1, nil
}

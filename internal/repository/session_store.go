package repository

import (
	"context"
	"time"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
)

// SessionStore persists authenticated-session state keyed by the opaque
// session id delivered in the cookie. The server is the sole owner of this
// state; a cookie with no matching record is unauthenticated.
//
// Get returns (nil, nil) for a missing or expired session. Delete is
// idempotent and must be atomic relative to concurrent Gets: a lookup
// racing a logout observes the session fully present or fully gone.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	UpdateScope(ctx context.Context, id string, scope domain.NurseryScope) error
	Delete(ctx context.Context, id string) error
}

// CsrfTokenStore binds anti-CSRF tokens to sessions. Issue is
// first-write-wins: concurrent calls for the same session converge on a
// single token, which holds for the session's lifetime (fixed-per-session
// policy). Get returns "" when no token is bound.
type CsrfTokenStore interface {
	Issue(ctx context.Context, sessionID string, ttl time.Duration) (string, error)
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

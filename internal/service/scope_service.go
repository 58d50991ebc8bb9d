package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

// ErrScopeNotPermitted is returned when a principal attempts to select a
// nursery scope its role does not allow.
var ErrScopeNotPermitted = errors.New("role not permitted to change nursery scope")

// ScopeService is the nursery scope selector. Hiding the selector in the
// UI is a convenience; this service is the enforcement boundary for scope
// changes, and it rejects rather than reinterprets disallowed requests.
type ScopeService struct {
	sessions repository.SessionStore
}

func NewScopeService(sessions repository.SessionStore) *ScopeService {
	return &ScopeService{sessions: sessions}
}

// CurrentScope derives the default scope for a principal.
func (s *ScopeService) CurrentScope(p domain.Principal) domain.NurseryScope {
	return domain.DefaultScope(p)
}

// TrySetScope changes the session's resolved scope. A super_admin may
// select any nursery or all of them (requestedNurseryID nil). Every other
// role may only re-select its own fixed nursery; anything else is denied.
func (s *ScopeService) TrySetScope(ctx context.Context, session *domain.Session, requestedNurseryID *int) (domain.NurseryScope, error) {
	p := session.Principal

	var scope domain.NurseryScope
	switch {
	case p.Role == domain.RoleSuperAdmin && requestedNurseryID == nil:
		scope = domain.AllNurseries()
	case p.Role == domain.RoleSuperAdmin:
		scope = domain.SingleNursery(*requestedNurseryID)
	case requestedNurseryID != nil && p.NurseryID != nil && *requestedNurseryID == *p.NurseryID:
		// Re-selecting one's own nursery is a no-op, not an escalation.
		scope = domain.SingleNursery(*p.NurseryID)
	default:
		return domain.NurseryScope{}, ErrScopeNotPermitted
	}

	if err := s.sessions.UpdateScope(ctx, session.ID, scope); err != nil {
		return domain.NurseryScope{}, fmt.Errorf("failed to persist scope: %w", err)
	}

	session.Scope = scope
	return scope, nil
}

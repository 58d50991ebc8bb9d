package service

import (
	"context"
	"log"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/policy"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

// ActivityService records admin actions and guard denials. Recording is
// best-effort: audit failures are logged, never propagated into the
// request they describe.
type ActivityService struct {
	logs repository.ActivityLogRepository
}

func NewActivityService(logs repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{logs: logs}
}

// Record writes one audit entry.
func (s *ActivityService) Record(ctx context.Context, entry *domain.ActivityLog) {
	if err := s.logs.Insert(ctx, entry); err != nil {
		log.Printf("[AUDIT] Failed to record activity %q on %q: %v", entry.Action, entry.Resource, err)
	}
}

// RecordMutation stamps a standard create/update/delete entry.
func (s *ActivityService) RecordMutation(ctx context.Context, p domain.Principal, action, resource string, nurseryID *int, detail string) {
	userID := p.UserID
	s.Record(ctx, &domain.ActivityLog{
		UserID:    &userID,
		NurseryID: nurseryID,
		Action:    action,
		Resource:  resource,
		Detail:    detail,
	})
}

// RecordDenial preserves the precise internal denial reason, which the
// HTTP response deliberately omits. This is the route guard's audit hook.
func (s *ActivityService) RecordDenial(ctx context.Context, p *domain.Principal, route string, reason policy.Reason) {
	entry := &domain.ActivityLog{
		Action:   domain.ActivityAccessDenied,
		Resource: route,
		Detail:   string(reason),
	}
	if p != nil {
		userID := p.UserID
		entry.UserID = &userID
		entry.NurseryID = p.NurseryID
	}
	s.Record(ctx, entry)
}

// List returns audit entries visible to the given scope.
func (s *ActivityService) List(ctx context.Context, scope domain.NurseryScope, limit, offset int) ([]*domain.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.logs.List(ctx, scope, limit, offset)
}

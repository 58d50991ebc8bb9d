package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

type activityLogRepository struct {
	db *sqlx.DB
}

// NewActivityLogRepository creates a PostgreSQL activity log repository.
func NewActivityLogRepository(db *sqlx.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (user_id, nursery_id, action, resource, detail)
		VALUES (:user_id, :nursery_id, :action, :resource, :detail)
		RETURNING id, created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, entry)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan activity log: %w", err)
		}
	}
	return rows.Err()
}

// List returns recent entries within scope. Entries with no nursery
// (system-wide actions) are only visible to all-nurseries scope.
func (r *activityLogRepository) List(ctx context.Context, scope domain.NurseryScope, limit, offset int) ([]*domain.ActivityLog, error) {
	args := []interface{}{limit, offset}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `
		SELECT id, user_id, nursery_id, action, resource, detail, created_at
		FROM activity_logs
		WHERE ` + scopeSQL + `
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	var entries []*domain.ActivityLog
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return entries, nil
}

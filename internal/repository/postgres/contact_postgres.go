package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

type contactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a PostgreSQL contact submission repository.
func NewContactRepository(db *sqlx.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Insert(ctx context.Context, submission *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (nursery_id, name, email, phone, message)
		VALUES (:nursery_id, :name, :email, :phone, :message)
		RETURNING id, created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, submission)
	if err != nil {
		return fmt.Errorf("failed to insert contact submission: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&submission.ID, &submission.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan contact submission: %w", err)
		}
	}
	return rows.Err()
}

// List returns submissions within scope. General enquiries (no nursery)
// are included for every authenticated scope, since they address the
// operator rather than a location.
func (r *contactRepository) List(ctx context.Context, scope domain.NurseryScope) ([]*domain.ContactSubmission, error) {
	if scope.Kind == domain.ScopeNone {
		return nil, nil
	}

	var args []interface{}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `
		SELECT id, nursery_id, name, email, phone, message, created_at
		FROM contact_submissions
		WHERE nursery_id IS NULL OR ` + scopeSQL + `
		ORDER BY created_at DESC`

	var submissions []*domain.ContactSubmission
	if err := r.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}

func (r *contactRepository) Delete(ctx context.Context, scope domain.NurseryScope, id int) error {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `DELETE FROM contact_submissions WHERE id = $1 AND (nursery_id IS NULL OR ` + scopeSQL + `)`

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete contact submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

const newsletterColumns = `id, nursery_id, title, summary, file_url, published,
	   published_at, created_by, updated_by, created_at, updated_at`

type newsletterRepository struct {
	db *sqlx.DB
}

// NewNewsletterRepository creates a PostgreSQL newsletter repository.
func NewNewsletterRepository(db *sqlx.DB) repository.NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) List(ctx context.Context, scope domain.NurseryScope, publishedOnly bool) ([]*domain.Newsletter, error) {
	var args []interface{}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `SELECT ` + newsletterColumns + ` FROM newsletters WHERE ` + scopeSQL
	if publishedOnly {
		query += ` AND published`
	}
	query += ` ORDER BY published_at DESC NULLS LAST, id DESC`

	var newsletters []*domain.Newsletter
	if err := r.db.SelectContext(ctx, &newsletters, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list newsletters: %w", err)
	}
	return newsletters, nil
}

func (r *newsletterRepository) GetByID(ctx context.Context, scope domain.NurseryScope, id int) (*domain.Newsletter, error) {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `SELECT ` + newsletterColumns + ` FROM newsletters WHERE id = $1 AND ` + scopeSQL

	var newsletter domain.Newsletter
	err := r.db.GetContext(ctx, &newsletter, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get newsletter: %w", err)
	}
	return &newsletter, nil
}

func (r *newsletterRepository) Create(ctx context.Context, newsletter *domain.Newsletter) error {
	query := `
		INSERT INTO newsletters (nursery_id, title, summary, file_url, published,
			published_at, created_by, updated_by)
		VALUES (:nursery_id, :title, :summary, :file_url, :published,
			:published_at, :created_by, :updated_by)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, newsletter)
	if err != nil {
		return fmt.Errorf("failed to create newsletter: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&newsletter.ID, &newsletter.CreatedAt, &newsletter.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan created newsletter: %w", err)
		}
	}
	return rows.Err()
}

func (r *newsletterRepository) Update(ctx context.Context, scope domain.NurseryScope, newsletter *domain.Newsletter) error {
	args := []interface{}{
		newsletter.Title, newsletter.Summary, newsletter.FileURL,
		newsletter.Published, newsletter.PublishedAt, newsletter.UpdatedBy,
		newsletter.ID,
	}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `
		UPDATE newsletters
		SET title = $1, summary = $2, file_url = $3, published = $4,
			published_at = $5, updated_by = $6, updated_at = now()
		WHERE id = $7 AND ` + scopeSQL

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update newsletter: %w", err)
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

func (r *newsletterRepository) Delete(ctx context.Context, scope domain.NurseryScope, id int) error {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `DELETE FROM newsletters WHERE id = $1 AND ` + scopeSQL

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete newsletter: %w", err)
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

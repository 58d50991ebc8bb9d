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

const eventColumns = `id, nursery_id, title, description, location, starts_at,
	   ends_at, published, created_by, updated_by, created_at, updated_at`

type eventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a PostgreSQL event repository.
func NewEventRepository(db *sqlx.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context, scope domain.NurseryScope, publishedOnly bool) ([]*domain.Event, error) {
	var args []interface{}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `SELECT ` + eventColumns + ` FROM events WHERE ` + scopeSQL
	if publishedOnly {
		query += ` AND published`
	}
	query += ` ORDER BY starts_at`

	var events []*domain.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, scope domain.NurseryScope, id int) (*domain.Event, error) {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND ` + scopeSQL

	var event domain.Event
	err := r.db.GetContext(ctx, &event, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		// Out-of-scope rows report exactly like missing rows.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (nursery_id, title, description, location, starts_at,
			ends_at, published, created_by, updated_by)
		VALUES (:nursery_id, :title, :description, :location, :starts_at,
			:ends_at, :published, :created_by, :updated_by)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan created event: %w", err)
		}
	}
	return rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, scope domain.NurseryScope, event *domain.Event) error {
	args := []interface{}{
		event.Title, event.Description, event.Location, event.StartsAt,
		event.EndsAt, event.Published, event.UpdatedBy, event.ID,
	}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `
		UPDATE events
		SET title = $1, description = $2, location = $3, starts_at = $4,
			ends_at = $5, published = $6, updated_by = $7, updated_at = now()
		WHERE id = $8 AND ` + scopeSQL

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
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

func (r *eventRepository) Delete(ctx context.Context, scope domain.NurseryScope, id int) error {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `DELETE FROM events WHERE id = $1 AND ` + scopeSQL

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
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

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

const staffColumns = `id, nursery_id, first_name, last_name, position, bio,
	   photo_url, display_order, created_by, updated_by, created_at, updated_at`

type staffRepository struct {
	db *sqlx.DB
}

// NewStaffRepository creates a PostgreSQL staff repository.
func NewStaffRepository(db *sqlx.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) List(ctx context.Context, scope domain.NurseryScope) ([]*domain.StaffMember, error) {
	var args []interface{}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE ` + scopeSQL +
		` ORDER BY display_order, last_name`

	var members []*domain.StaffMember
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}
	return members, nil
}

func (r *staffRepository) GetByID(ctx context.Context, scope domain.NurseryScope, id int) (*domain.StaffMember, error) {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE id = $1 AND ` + scopeSQL

	var member domain.StaffMember
	err := r.db.GetContext(ctx, &member, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return &member, nil
}

func (r *staffRepository) Create(ctx context.Context, member *domain.StaffMember) error {
	query := `
		INSERT INTO staff_members (nursery_id, first_name, last_name, position,
			bio, photo_url, display_order, created_by, updated_by)
		VALUES (:nursery_id, :first_name, :last_name, :position,
			:bio, :photo_url, :display_order, :created_by, :updated_by)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, member)
	if err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan created staff member: %w", err)
		}
	}
	return rows.Err()
}

func (r *staffRepository) Update(ctx context.Context, scope domain.NurseryScope, member *domain.StaffMember) error {
	args := []interface{}{
		member.FirstName, member.LastName, member.Position, member.Bio,
		member.PhotoURL, member.DisplayOrder, member.UpdatedBy, member.ID,
	}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `
		UPDATE staff_members
		SET first_name = $1, last_name = $2, position = $3, bio = $4,
			photo_url = $5, display_order = $6, updated_by = $7, updated_at = now()
		WHERE id = $8 AND ` + scopeSQL

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
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

func (r *staffRepository) Delete(ctx context.Context, scope domain.NurseryScope, id int) error {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `DELETE FROM staff_members WHERE id = $1 AND ` + scopeSQL

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
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

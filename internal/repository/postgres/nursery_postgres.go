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

type nurseryRepository struct {
	db *sqlx.DB
}

// NewNurseryRepository creates a PostgreSQL nursery repository.
func NewNurseryRepository(db *sqlx.DB) repository.NurseryRepository {
	return &nurseryRepository{db: db}
}

const nurseryColumns = `id, name, slug, address, phone, email, description,
	   hero_image_url, created_at, updated_at`

func (r *nurseryRepository) List(ctx context.Context) ([]*domain.Nursery, error) {
	query := `SELECT ` + nurseryColumns + ` FROM nurseries ORDER BY name`

	var nurseries []*domain.Nursery
	if err := r.db.SelectContext(ctx, &nurseries, query); err != nil {
		return nil, fmt.Errorf("failed to list nurseries: %w", err)
	}
	return nurseries, nil
}

func (r *nurseryRepository) GetByID(ctx context.Context, id int) (*domain.Nursery, error) {
	query := `SELECT ` + nurseryColumns + ` FROM nurseries WHERE id = $1`

	var nursery domain.Nursery
	err := r.db.GetContext(ctx, &nursery, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nursery: %w", err)
	}
	return &nursery, nil
}

func (r *nurseryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Nursery, error) {
	query := `SELECT ` + nurseryColumns + ` FROM nurseries WHERE slug = $1`

	var nursery domain.Nursery
	err := r.db.GetContext(ctx, &nursery, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nursery by slug: %w", err)
	}
	return &nursery, nil
}

func (r *nurseryRepository) Create(ctx context.Context, nursery *domain.Nursery) error {
	query := `
		INSERT INTO nurseries (name, slug, address, phone, email, description, hero_image_url)
		VALUES (:name, :slug, :address, :phone, :email, :description, :hero_image_url)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, nursery)
	if err != nil {
		return fmt.Errorf("failed to create nursery: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&nursery.ID, &nursery.CreatedAt, &nursery.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan created nursery: %w", err)
		}
	}
	return rows.Err()
}

func (r *nurseryRepository) Update(ctx context.Context, nursery *domain.Nursery) error {
	query := `
		UPDATE nurseries
		SET name = :name,
			slug = :slug,
			address = :address,
			phone = :phone,
			email = :email,
			description = :description,
			hero_image_url = :hero_image_url,
			updated_at = now()
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, nursery)
	if err != nil {
		return fmt.Errorf("failed to update nursery: %w", err)
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

func (r *nurseryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM nurseries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete nursery: %w", err)
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

type settingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a PostgreSQL settings repository.
func NewSettingsRepository(db *sqlx.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, nurseryID int) (*domain.NurserySettings, error) {
	query := `
		SELECT nursery_id, opening_hours, contact_phone, contact_email,
			   intro_text, updated_by, updated_at
		FROM nursery_settings
		WHERE nursery_id = $1`

	var settings domain.NurserySettings
	err := r.db.GetContext(ctx, &settings, query, nurseryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *domain.NurserySettings) error {
	query := `
		INSERT INTO nursery_settings (nursery_id, opening_hours, contact_phone,
			contact_email, intro_text, updated_by, updated_at)
		VALUES (:nursery_id, :opening_hours, :contact_phone, :contact_email,
			:intro_text, :updated_by, now())
		ON CONFLICT (nursery_id) DO UPDATE
		SET opening_hours = EXCLUDED.opening_hours,
			contact_phone = EXCLUDED.contact_phone,
			contact_email = EXCLUDED.contact_email,
			intro_text = EXCLUDED.intro_text,
			updated_by = EXCLUDED.updated_by,
			updated_at = now()`

	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}

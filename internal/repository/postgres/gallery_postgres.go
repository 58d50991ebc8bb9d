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

const galleryColumns = `id, nursery_id, title, caption, image_url, sort_order,
	   created_by, updated_by, created_at, updated_at`

type galleryRepository struct {
	db *sqlx.DB
}

// NewGalleryRepository creates a PostgreSQL gallery repository.
func NewGalleryRepository(db *sqlx.DB) repository.GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) List(ctx context.Context, scope domain.NurseryScope) ([]*domain.GalleryImage, error) {
	var args []interface{}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `SELECT ` + galleryColumns + ` FROM gallery_images WHERE ` + scopeSQL +
		` ORDER BY sort_order, id`

	var images []*domain.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

func (r *galleryRepository) GetByID(ctx context.Context, scope domain.NurseryScope, id int) (*domain.GalleryImage, error) {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `SELECT ` + galleryColumns + ` FROM gallery_images WHERE id = $1 AND ` + scopeSQL

	var image domain.GalleryImage
	err := r.db.GetContext(ctx, &image, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery image: %w", err)
	}
	return &image, nil
}

func (r *galleryRepository) Create(ctx context.Context, image *domain.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (nursery_id, title, caption, image_url,
			sort_order, created_by, updated_by)
		VALUES (:nursery_id, :title, :caption, :image_url,
			:sort_order, :created_by, :updated_by)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, image)
	if err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan created gallery image: %w", err)
		}
	}
	return rows.Err()
}

func (r *galleryRepository) Update(ctx context.Context, scope domain.NurseryScope, image *domain.GalleryImage) error {
	args := []interface{}{
		image.Title, image.Caption, image.ImageURL, image.SortOrder,
		image.UpdatedBy, image.ID,
	}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `
		UPDATE gallery_images
		SET title = $1, caption = $2, image_url = $3, sort_order = $4,
			updated_by = $5, updated_at = now()
		WHERE id = $6 AND ` + scopeSQL

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update gallery image: %w", err)
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

func (r *galleryRepository) Delete(ctx context.Context, scope domain.NurseryScope, id int) error {
	args := []interface{}{id}
	scopeSQL, args := scopeCondition(scope, "nursery_id", args)

	query := `DELETE FROM gallery_images WHERE id = $1 AND ` + scopeSQL

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
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

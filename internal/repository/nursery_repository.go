package repository

import (
	"context"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
)

type NurseryRepository interface {
	List(ctx context.Context) ([]*domain.Nursery, error)
	GetByID(ctx context.Context, id int) (*domain.Nursery, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Nursery, error)
	Create(ctx context.Context, nursery *domain.Nursery) error
	Update(ctx context.Context, nursery *domain.Nursery) error
	Delete(ctx context.Context, id int) error
}

type SettingsRepository interface {
	Get(ctx context.Context, nurseryID int) (*domain.NurserySettings, error)
	Upsert(ctx context.Context, settings *domain.NurserySettings) error
}

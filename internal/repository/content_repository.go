package repository

import (
	"context"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
)

// Nursery-owned content repositories. Every read takes a resolved
// domain.NurseryScope so scope filtering happens in the query itself; a Get
// outside the caller's scope reports not-found, indistinguishable from a
// row that does not exist.

type EventRepository interface {
	List(ctx context.Context, scope domain.NurseryScope, publishedOnly bool) ([]*domain.Event, error)
	GetByID(ctx context.Context, scope domain.NurseryScope, id int) (*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, scope domain.NurseryScope, event *domain.Event) error
	Delete(ctx context.Context, scope domain.NurseryScope, id int) error
}

type GalleryRepository interface {
	List(ctx context.Context, scope domain.NurseryScope) ([]*domain.GalleryImage, error)
	GetByID(ctx context.Context, scope domain.NurseryScope, id int) (*domain.GalleryImage, error)
	Create(ctx context.Context, image *domain.GalleryImage) error
	Update(ctx context.Context, scope domain.NurseryScope, image *domain.GalleryImage) error
	Delete(ctx context.Context, scope domain.NurseryScope, id int) error
}

type NewsletterRepository interface {
	List(ctx context.Context, scope domain.NurseryScope, publishedOnly bool) ([]*domain.Newsletter, error)
	GetByID(ctx context.Context, scope domain.NurseryScope, id int) (*domain.Newsletter, error)
	Create(ctx context.Context, newsletter *domain.Newsletter) error
	Update(ctx context.Context, scope domain.NurseryScope, newsletter *domain.Newsletter) error
	Delete(ctx context.Context, scope domain.NurseryScope, id int) error
}

type StaffRepository interface {
	List(ctx context.Context, scope domain.NurseryScope) ([]*domain.StaffMember, error)
	GetByID(ctx context.Context, scope domain.NurseryScope, id int) (*domain.StaffMember, error)
	Create(ctx context.Context, member *domain.StaffMember) error
	Update(ctx context.Context, scope domain.NurseryScope, member *domain.StaffMember) error
	Delete(ctx context.Context, scope domain.NurseryScope, id int) error
}

type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	List(ctx context.Context, scope domain.NurseryScope, limit, offset int) ([]*domain.ActivityLog, error)
}

type ContactRepository interface {
	Insert(ctx context.Context, submission *domain.ContactSubmission) error
	List(ctx context.Context, scope domain.NurseryScope) ([]*domain.ContactSubmission, error)
	Delete(ctx context.Context, scope domain.NurseryScope, id int) error
}

package service

import (
	"context"
	"fmt"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

type GalleryService struct {
	gallery  repository.GalleryRepository
	activity *ActivityService
}

func NewGalleryService(gallery repository.GalleryRepository, activity *ActivityService) *GalleryService {
	return &GalleryService{gallery: gallery, activity: activity}
}

func (s *GalleryService) List(ctx context.Context, scope domain.NurseryScope) ([]*domain.GalleryImage, error) {
	return s.gallery.List(ctx, scope)
}

func (s *GalleryService) Get(ctx context.Context, scope domain.NurseryScope, id int) (*domain.GalleryImage, error) {
	return s.gallery.GetByID(ctx, scope, id)
}

func (s *GalleryService) Create(ctx context.Context, p domain.Principal, image *domain.GalleryImage) error {
	image.CreatedBy = p.UserID
	image.UpdatedBy = p.UserID

	if err := s.gallery.Create(ctx, image); err != nil {
		return err
	}

	nurseryID := image.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityCreate, "gallery", &nurseryID,
		fmt.Sprintf("added gallery image %d (%s)", image.ID, image.Title))
	return nil
}

func (s *GalleryService) Update(ctx context.Context, p domain.Principal, scope domain.NurseryScope, image *domain.GalleryImage) error {
	image.UpdatedBy = p.UserID

	if err := s.gallery.Update(ctx, scope, image); err != nil {
		return err
	}

	nurseryID := image.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityUpdate, "gallery", &nurseryID,
		fmt.Sprintf("updated gallery image %d", image.ID))
	return nil
}

func (s *GalleryService) Delete(ctx context.Context, p domain.Principal, scope domain.NurseryScope, nurseryID, id int) error {
	if err := s.gallery.Delete(ctx, scope, id); err != nil {
		return err
	}

	s.activity.RecordMutation(ctx, p, domain.ActivityDelete, "gallery", &nurseryID,
		fmt.Sprintf("deleted gallery image %d", id))
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

type NewsletterService struct {
	newsletters repository.NewsletterRepository
	activity    *ActivityService
}

func NewNewsletterService(newsletters repository.NewsletterRepository, activity *ActivityService) *NewsletterService {
	return &NewsletterService{newsletters: newsletters, activity: activity}
}

func (s *NewsletterService) List(ctx context.Context, scope domain.NurseryScope, publishedOnly bool) ([]*domain.Newsletter, error) {
	return s.newsletters.List(ctx, scope, publishedOnly)
}

func (s *NewsletterService) Get(ctx context.Context, scope domain.NurseryScope, id int) (*domain.Newsletter, error) {
	return s.newsletters.GetByID(ctx, scope, id)
}

func (s *NewsletterService) Create(ctx context.Context, p domain.Principal, newsletter *domain.Newsletter) error {
	newsletter.CreatedBy = p.UserID
	newsletter.UpdatedBy = p.UserID
	stampPublishedAt(newsletter)

	if err := s.newsletters.Create(ctx, newsletter); err != nil {
		return err
	}

	nurseryID := newsletter.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityCreate, "newsletters", &nurseryID,
		fmt.Sprintf("created newsletter %d (%s)", newsletter.ID, newsletter.Title))
	return nil
}

func (s *NewsletterService) Update(ctx context.Context, p domain.Principal, scope domain.NurseryScope, newsletter *domain.Newsletter) error {
	newsletter.UpdatedBy = p.UserID
	stampPublishedAt(newsletter)

	if err := s.newsletters.Update(ctx, scope, newsletter); err != nil {
		return err
	}

	nurseryID := newsletter.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityUpdate, "newsletters", &nurseryID,
		fmt.Sprintf("updated newsletter %d", newsletter.ID))
	return nil
}

func (s *NewsletterService) Delete(ctx context.Context, p domain.Principal, scope domain.NurseryScope, nurseryID, id int) error {
	if err := s.newsletters.Delete(ctx, scope, id); err != nil {
		return err
	}

	s.activity.RecordMutation(ctx, p, domain.ActivityDelete, "newsletters", &nurseryID,
		fmt.Sprintf("deleted newsletter %d", id))
	return nil
}

func stampPublishedAt(n *domain.Newsletter) {
	if n.Published && n.PublishedAt == nil {
		now := time.Now()
		n.PublishedAt = &now
	}
	if !n.Published {
		n.PublishedAt = nil
	}
}

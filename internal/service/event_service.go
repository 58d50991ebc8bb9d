package service

import (
	"context"
	"fmt"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

type EventService struct {
	events   repository.EventRepository
	activity *ActivityService
}

func NewEventService(events repository.EventRepository, activity *ActivityService) *EventService {
	return &EventService{events: events, activity: activity}
}

func (s *EventService) List(ctx context.Context, scope domain.NurseryScope, publishedOnly bool) ([]*domain.Event, error) {
	return s.events.List(ctx, scope, publishedOnly)
}

func (s *EventService) Get(ctx context.Context, scope domain.NurseryScope, id int) (*domain.Event, error) {
	return s.events.GetByID(ctx, scope, id)
}

func (s *EventService) Create(ctx context.Context, p domain.Principal, event *domain.Event) error {
	event.CreatedBy = p.UserID
	event.UpdatedBy = p.UserID

	if err := s.events.Create(ctx, event); err != nil {
		return err
	}

	nurseryID := event.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityCreate, "events", &nurseryID,
		fmt.Sprintf("created event %d (%s)", event.ID, event.Title))
	return nil
}

func (s *EventService) Update(ctx context.Context, p domain.Principal, scope domain.NurseryScope, event *domain.Event) error {
	event.UpdatedBy = p.UserID

	if err := s.events.Update(ctx, scope, event); err != nil {
		return err
	}

	nurseryID := event.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityUpdate, "events", &nurseryID,
		fmt.Sprintf("updated event %d", event.ID))
	return nil
}

func (s *EventService) Delete(ctx context.Context, p domain.Principal, scope domain.NurseryScope, nurseryID, id int) error {
	if err := s.events.Delete(ctx, scope, id); err != nil {
		return err
	}

	s.activity.RecordMutation(ctx, p, domain.ActivityDelete, "events", &nurseryID,
		fmt.Sprintf("deleted event %d", id))
	return nil
}

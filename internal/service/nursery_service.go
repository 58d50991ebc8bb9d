package service

import (
	"context"
	"fmt"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

// NurseryService manages the nursery registry. Mutations are super_admin
// territory; the route guard enforces that before calls arrive here.
type NurseryService struct {
	nurseries repository.NurseryRepository
	settings  repository.SettingsRepository
	activity  *ActivityService
}

func NewNurseryService(
	nurseries repository.NurseryRepository,
	settings repository.SettingsRepository,
	activity *ActivityService,
) *NurseryService {
	return &NurseryService{nurseries: nurseries, settings: settings, activity: activity}
}

func (s *NurseryService) List(ctx context.Context) ([]*domain.Nursery, error) {
	return s.nurseries.List(ctx)
}

func (s *NurseryService) Get(ctx context.Context, id int) (*domain.Nursery, error) {
	return s.nurseries.GetByID(ctx, id)
}

func (s *NurseryService) GetBySlug(ctx context.Context, slug string) (*domain.Nursery, error) {
	return s.nurseries.GetBySlug(ctx, slug)
}

func (s *NurseryService) Create(ctx context.Context, p domain.Principal, nursery *domain.Nursery) error {
	if err := s.nurseries.Create(ctx, nursery); err != nil {
		return err
	}

	nurseryID := nursery.ID
	s.activity.RecordMutation(ctx, p, domain.ActivityCreate, "nurseries", &nurseryID,
		fmt.Sprintf("created nursery %d (%s)", nursery.ID, nursery.Name))
	return nil
}

func (s *NurseryService) Update(ctx context.Context, p domain.Principal, nursery *domain.Nursery) error {
	if err := s.nurseries.Update(ctx, nursery); err != nil {
		return err
	}

	nurseryID := nursery.ID
	s.activity.RecordMutation(ctx, p, domain.ActivityUpdate, "nurseries", &nurseryID,
		fmt.Sprintf("updated nursery %d", nursery.ID))
	return nil
}

func (s *NurseryService) Delete(ctx context.Context, p domain.Principal, id int) error {
	if err := s.nurseries.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.RecordMutation(ctx, p, domain.ActivityDelete, "nurseries", &id,
		fmt.Sprintf("deleted nursery %d", id))
	return nil
}

func (s *NurseryService) GetSettings(ctx context.Context, nurseryID int) (*domain.NurserySettings, error) {
	return s.settings.Get(ctx, nurseryID)
}

func (s *NurseryService) UpdateSettings(ctx context.Context, p domain.Principal, settings *domain.NurserySettings) error {
	settings.UpdatedBy = p.UserID

	if err := s.settings.Upsert(ctx, settings); err != nil {
		return err
	}

	nurseryID := settings.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityUpdate, "settings", &nurseryID,
		fmt.Sprintf("updated settings for nursery %d", settings.NurseryID))
	return nil
}

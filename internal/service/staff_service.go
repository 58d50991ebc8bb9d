package service

import (
	"context"
	"fmt"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
)

type StaffService struct {
	staff    repository.StaffRepository
	activity *ActivityService
}

func NewStaffService(staff repository.StaffRepository, activity *ActivityService) *StaffService {
	return &StaffService{staff: staff, activity: activity}
}

func (s *StaffService) List(ctx context.Context, scope domain.NurseryScope) ([]*domain.StaffMember, error) {
	return s.staff.List(ctx, scope)
}

func (s *StaffService) Get(ctx context.Context, scope domain.NurseryScope, id int) (*domain.StaffMember, error) {
	return s.staff.GetByID(ctx, scope, id)
}

func (s *StaffService) Create(ctx context.Context, p domain.Principal, member *domain.StaffMember) error {
	member.CreatedBy = p.UserID
	member.UpdatedBy = p.UserID

	if err := s.staff.Create(ctx, member); err != nil {
		return err
	}

	nurseryID := member.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityCreate, "staff", &nurseryID,
		fmt.Sprintf("added staff member %d (%s %s)", member.ID, member.FirstName, member.LastName))
	return nil
}

func (s *StaffService) Update(ctx context.Context, p domain.Principal, scope domain.NurseryScope, member *domain.StaffMember) error {
	member.UpdatedBy = p.UserID

	if err := s.staff.Update(ctx, scope, member); err != nil {
		return err
	}

	nurseryID := member.NurseryID
	s.activity.RecordMutation(ctx, p, domain.ActivityUpdate, "staff", &nurseryID,
		fmt.Sprintf("updated staff member %d", member.ID))
	return nil
}

func (s *StaffService) Delete(ctx context.Context, p domain.Principal, scope domain.NurseryScope, nurseryID, id int) error {
	if err := s.staff.Delete(ctx, scope, id); err != nil {
		return err
	}

	s.activity.RecordMutation(ctx, p, domain.ActivityDelete, "staff", &nurseryID,
		fmt.Sprintf("deleted staff member %d", id))
	return nil
}

package service

import (
	"context"
	"fmt"
	"log"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/email"
)

type ContactService struct {
	contacts     repository.ContactRepository
	activity     *ActivityService
	mailer       email.Service
	adminAddress string
}

func NewContactService(
	contacts repository.ContactRepository,
	activity *ActivityService,
	mailer email.Service,
	adminAddress string,
) *ContactService {
	return &ContactService{
		contacts:     contacts,
		activity:     activity,
		mailer:       mailer,
		adminAddress: adminAddress,
	}
}

// Submit stores a public contact form submission and notifies the
// operator. Notification failures are logged; the submission is already
// persisted and the visitor gets a success either way.
func (s *ContactService) Submit(ctx context.Context, submission *domain.ContactSubmission) error {
	if err := s.contacts.Insert(ctx, submission); err != nil {
		return err
	}

	if s.adminAddress != "" {
		if err := s.mailer.SendContactNotification(ctx, s.adminAddress,
			submission.Name, submission.Email, submission.Message); err != nil {
			log.Printf("[CONTACT] Notification for submission %d not delivered: %v", submission.ID, err)
		}
	}
	return nil
}

func (s *ContactService) List(ctx context.Context, scope domain.NurseryScope) ([]*domain.ContactSubmission, error) {
	return s.contacts.List(ctx, scope)
}

func (s *ContactService) Delete(ctx context.Context, p domain.Principal, scope domain.NurseryScope, id int) error {
	if err := s.contacts.Delete(ctx, scope, id); err != nil {
		return err
	}

	s.activity.RecordMutation(ctx, p, domain.ActivityDelete, "contact-submissions", nil,
		fmt.Sprintf("deleted contact submission %d", id))
	return nil
}

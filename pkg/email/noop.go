package email

import (
	"context"
	"log"
)

// NoopService discards all mail. Used when email delivery is disabled.
type NoopService struct{}

func NewNoopService() *NoopService { return &NoopService{} }

func (NoopService) SendPasswordResetEmail(_ context.Context, to, _, _ string) error {
	log.Printf("[EMAIL] (disabled) password reset email for %s not sent", to)
	return nil
}

func (NoopService) SendContactNotification(_ context.Context, to, _, _, _ string) error {
	log.Printf("[EMAIL] (disabled) contact notification for %s not sent", to)
	return nil
}

package email

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendService implements Service using Resend.
type ResendService struct {
	client *resend.Client
	config *Config
}

// NewResendService creates a new Resend-backed email service.
func NewResendService(config *Config) (*ResendService, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if config.FromAddress == "" {
		return nil, fmt.Errorf("from address is required")
	}

	return &ResendService{
		client: resend.NewClient(config.APIKey),
		config: config,
	}, nil
}

func (s *ResendService) SendPasswordResetEmail(ctx context.Context, to, name, resetURL string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{to},
		Subject: "Reset your password",
		Html:    PasswordResetTemplate(name, resetURL),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[EMAIL] Failed to send password reset email to %s: %v", to, err)
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	log.Printf("[EMAIL] Password reset email sent to %s (ID: %s)", to, sent.Id)
	return nil
}

func (s *ResendService) SendContactNotification(ctx context.Context, to, fromName, fromEmail, message string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{to},
		ReplyTo: fromEmail,
		Subject: fmt.Sprintf("New contact form submission from %s", fromName),
		Html:    ContactNotificationTemplate(fromName, fromEmail, message),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[EMAIL] Failed to send contact notification: %v", err)
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	log.Printf("[EMAIL] Contact notification sent to %s (ID: %s)", to, sent.Id)
	return nil
}

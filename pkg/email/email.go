package email

import "context"

// Service defines the outbound email operations the admin backend needs.
type Service interface {
	// SendPasswordResetEmail sends a password reset link to the user.
	SendPasswordResetEmail(ctx context.Context, to, name, resetURL string) error

	// SendContactNotification notifies the site operator of a new contact
	// form submission.
	SendContactNotification(ctx context.Context, to, fromName, fromEmail, message string) error
}

// Config holds email service configuration.
type Config struct {
	APIKey      string
	FromAddress string
	FromName    string
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/config"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/email"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/hash"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/resettoken"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, with an identical message for either.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// dummyHash is verified against when the username is unknown, so both
// failure paths cost one argon2 evaluation and are not distinguishable by
// timing. Computed once at startup from a throwaway secret.
var dummyHash = func() string {
	h, err := hash.Password(uuid.NewString())
	if err != nil {
		panic(err)
	}
	return h
}()

type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	csrf     repository.CsrfTokenStore
	reset    *resettoken.Service
	mailer   email.Service
	cfg      *config.Config
	activity *ActivityService
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionStore,
	csrf repository.CsrfTokenStore,
	reset *resettoken.Service,
	mailer email.Service,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		csrf:     csrf,
		reset:    reset,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// SetActivityService wires login/logout audit recording. Optional; nil
// leaves those entries unrecorded.
func (s *AuthService) SetActivityService(activity *ActivityService) {
	s.activity = activity
}

// Login verifies credentials and creates a session. Credential mismatches
// return ErrInvalidCredentials; any other error is an infrastructure
// failure and must not be surfaced as a login rejection.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*domain.Session, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		// Burn an argon2 evaluation so unknown users cost the same as
		// wrong passwords.
		_, _ = hash.Verify(req.Password, dummyHash)
		return nil, ErrInvalidCredentials
	}

	valid, err := hash.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	principal := user.Principal()
	now := time.Now()

	session := &domain.Session{
		ID:        uuid.NewString(),
		Principal: principal,
		Scope:     domain.DefaultScope(principal),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Session.TTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		// Login already succeeded; record keeping must not fail it.
		log.Printf("[AUTH] Failed to record last login for user %d: %v", user.ID, err)
	}

	if s.activity != nil {
		userID := user.ID
		s.activity.Record(ctx, &domain.ActivityLog{
			UserID:    &userID,
			NurseryID: user.NurseryID,
			Action:    domain.ActivityLogin,
			Resource:  "session",
		})
	}

	return session, nil
}

// Logout destroys the session and its CSRF binding. Logging out a session
// that no longer exists is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	var ended *domain.Session
	if s.activity != nil {
		ended, _ = s.sessions.Get(ctx, sessionID)
	}

	if err := s.csrf.Delete(ctx, sessionID); err != nil {
		log.Printf("[AUTH] Failed to delete csrf token for session: %v", err)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	if s.activity != nil && ended != nil {
		userID := ended.Principal.UserID
		s.activity.Record(ctx, &domain.ActivityLog{
			UserID:    &userID,
			NurseryID: ended.Principal.NurseryID,
			Action:    domain.ActivityLogout,
			Resource:  "session",
		})
	}
	return nil
}

// CurrentSession resolves a session id to its record. A missing or expired
// session returns (nil, nil), not an error; only store failures error.
func (s *AuthService) CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	return s.sessions.Get(ctx, sessionID)
}

// ForgotPassword issues a reset token by email. The outcome is identical
// whether or not the address matches an account, to avoid enumeration.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil
	}

	token, err := s.reset.Generate(user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/admin/reset-password?token=%s", s.cfg.Email.PublicBaseURL, token)
	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, user.FirstName, resetURL); err != nil {
		// Surfacing the failure would reveal that the address matched an
		// account, since unknown addresses always succeed.
		log.Printf("[AUTH] Failed to send reset email: %v", err)
	}
	return nil
}

// ResetPassword verifies a reset token and stores a new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, _, err := s.reset.Verify(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	encoded, err := hash.Password(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, encoded); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/config"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository/memory"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/email"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/hash"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/resettoken"
)

// stubUserRepository serves fixed users keyed by username and records
// password updates.
type stubUserRepository struct {
	users            map[string]*domain.User
	updatedID        int
	updatedHash      string
	lastLoginTouched bool
}

func (r *stubUserRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.users[username], nil
}

func (r *stubUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepository) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	r.updatedID = id
	r.updatedHash = passwordHash
	return nil
}

func (r *stubUserRepository) TouchLastLogin(_ context.Context, _ int) error {
	r.lastLoginTouched = true
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.TTL = time.Hour
	cfg.Email.PublicBaseURL = "http://localhost:3000"
	return cfg
}

func newTestAuthService(t *testing.T, users map[string]*domain.User) (*AuthService, *stubUserRepository) {
	t.Helper()

	repo := &stubUserRepository{users: users}
	svc := NewAuthService(
		repo,
		memory.NewSessionStore(),
		memory.NewCsrfTokenStore(),
		resettoken.NewService("test-secret", 30*time.Minute, "test"),
		email.NewNoopService(),
		testConfig(),
	)
	return svc, repo
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()

	encoded, err := hash.Password(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	nurseryID := 3
	return &domain.User{
		ID:           1,
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: encoded,
		FirstName:    "Jane",
		Role:         domain.RoleNurseryAdmin,
		NurseryID:    &nurseryID,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "correct-horse-battery")
	svc, repo := newTestAuthService(t, map[string]*domain.User{"jane": user})

	session, err := svc.Login(context.Background(), LoginRequest{Username: "jane", Password: "correct-horse-battery"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.ID == "" {
		t.Error("session id is empty")
	}
	if session.Principal.UserID != user.ID {
		t.Errorf("principal user id = %d, want %d", session.Principal.UserID, user.ID)
	}
	if session.Scope.Kind != domain.ScopeSingle || session.Scope.NurseryID != 3 {
		t.Errorf("scope = %+v, want single nursery 3", session.Scope)
	}
	if !repo.lastLoginTouched {
		t.Error("last login was not recorded")
	}

	// The session must be resolvable afterwards.
	got, err := svc.CurrentSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("CurrentSession() error = %v", err)
	}
	if got == nil || got.ID != session.ID {
		t.Fatalf("CurrentSession() = %+v, want session %s", got, session.ID)
	}
}

// Wrong passwords and unknown usernames must be indistinguishable to the
// caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	user := testUser(t, "correct-horse-battery")
	svc, _ := newTestAuthService(t, map[string]*domain.User{"jane": user})

	_, wrongPassErr := svc.Login(context.Background(), LoginRequest{Username: "jane", Password: "wrong-password-1"})
	_, unknownUserErr := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "wrong-password-1"})

	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassErr)
	}
	if !errors.Is(unknownUserErr, ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", unknownUserErr)
	}
	if wrongPassErr.Error() != unknownUserErr.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPassErr, unknownUserErr)
	}
}

// The unknown-user path must burn a real argon2 verification so its cost
// tracks the wrong-password path.
func TestLoginUnknownUserCostsFullVerify(t *testing.T) {
	// A malformed dummy hash would make Verify bail out before the key
	// derivation, collapsing the unknown-user latency.
	ok, err := hash.Verify("any-password", dummyHash)
	if err != nil {
		t.Fatalf("dummy hash does not decode: %v", err)
	}
	if ok {
		t.Fatal("dummy hash verified an arbitrary password")
	}

	user := testUser(t, "correct-horse-battery")
	svc, _ := newTestAuthService(t, map[string]*domain.User{"jane": user})

	minElapsed := func(username string) time.Duration {
		best := time.Duration(1<<63 - 1)
		for i := 0; i < 3; i++ {
			start := time.Now()
			_, _ = svc.Login(context.Background(), LoginRequest{Username: username, Password: "wrong-password-1"})
			if elapsed := time.Since(start); elapsed < best {
				best = elapsed
			}
		}
		return best
	}

	wrongPass := minElapsed("jane")
	unknown := minElapsed("nobody")

	// Coarse bound: both paths pay one argon2 evaluation, so the unknown
	// path cannot be drastically cheaper than the wrong-password path.
	if unknown < wrongPass/4 {
		t.Errorf("unknown-user login took %v, wrong-password took %v", unknown, wrongPass)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	user := testUser(t, "correct-horse-battery")
	svc, _ := newTestAuthService(t, map[string]*domain.User{"jane": user})

	session, err := svc.Login(context.Background(), LoginRequest{Username: "jane", Password: "correct-horse-battery"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := svc.Logout(context.Background(), session.ID); err != nil {
		t.Fatalf("first Logout() error = %v", err)
	}
	if err := svc.Logout(context.Background(), session.ID); err != nil {
		t.Fatalf("second Logout() error = %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty-id Logout() error = %v", err)
	}

	got, err := svc.CurrentSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("CurrentSession() error = %v", err)
	}
	if got != nil {
		t.Error("session still resolvable after logout")
	}
}

func TestCurrentSessionExpired(t *testing.T) {
	store := memory.NewSessionStore()
	svc := NewAuthService(
		&stubUserRepository{},
		store,
		memory.NewCsrfTokenStore(),
		resettoken.NewService("test-secret", 30*time.Minute, "test"),
		email.NewNoopService(),
		testConfig(),
	)

	expired := &domain.Session{
		ID:        "expired-session",
		Principal: domain.Principal{UserID: 1, Role: domain.RoleStaff},
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := store.Create(context.Background(), expired); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.CurrentSession(context.Background(), expired.ID)
	if err != nil {
		t.Fatalf("CurrentSession() error = %v", err)
	}
	if got != nil {
		t.Error("expired session resolved as live")
	}
}

func TestForgotPasswordUnknownEmailSucceeds(t *testing.T) {
	svc, _ := newTestAuthService(t, map[string]*domain.User{})

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
}

// failingMailer rejects every send.
type failingMailer struct{}

func (failingMailer) SendPasswordResetEmail(context.Context, string, string, string) error {
	return errors.New("smtp relay down")
}

func (failingMailer) SendContactNotification(context.Context, string, string, string, string) error {
	return errors.New("smtp relay down")
}

// A send failure must report the same outcome as an unknown address, or
// the response would reveal which addresses have accounts.
func TestForgotPasswordUniformOnSendFailure(t *testing.T) {
	user := testUser(t, "correct-horse-battery")
	svc := NewAuthService(
		&stubUserRepository{users: map[string]*domain.User{"jane": user}},
		memory.NewSessionStore(),
		memory.NewCsrfTokenStore(),
		resettoken.NewService("test-secret", 30*time.Minute, "test"),
		failingMailer{},
		testConfig(),
	)

	if err := svc.ForgotPassword(context.Background(), user.Email); err != nil {
		t.Fatalf("ForgotPassword() with failing mailer error = %v", err)
	}
}

func TestResetPasswordRoundTrip(t *testing.T) {
	user := testUser(t, "old-password-123")
	svc, repo := newTestAuthService(t, map[string]*domain.User{"jane": user})

	tokens := resettoken.NewService("test-secret", 30*time.Minute, "test")
	token, err := tokens.Generate(user.ID, user.Email)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if err := svc.ResetPassword(context.Background(), token, "new-password-456"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}
	if repo.updatedID != user.ID {
		t.Errorf("password updated for user %d, want %d", repo.updatedID, user.ID)
	}
	ok, err := hash.Verify("new-password-456", repo.updatedHash)
	if err != nil || !ok {
		t.Errorf("stored hash does not verify new password (ok=%v err=%v)", ok, err)
	}
}

func TestResetPasswordRejectsBadToken(t *testing.T) {
	user := testUser(t, "old-password-123")
	svc, _ := newTestAuthService(t, map[string]*domain.User{"jane": user})

	err := svc.ResetPassword(context.Background(), "not-a-token", "new-password-456")
	if !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("ResetPassword() error = %v, want ErrInvalidResetToken", err)
	}
}

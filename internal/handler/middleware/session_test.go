package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/config"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository/memory"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/email"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/resettoken"
)

// emptyUserRepository has no users; session resolution never consults it.
type emptyUserRepository struct{}

func (emptyUserRepository) GetByID(context.Context, int) (*domain.User, error) { return nil, nil }
func (emptyUserRepository) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, nil
}
func (emptyUserRepository) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, nil
}
func (emptyUserRepository) UpdatePassword(context.Context, int, string) error { return nil }
func (emptyUserRepository) TouchLastLogin(context.Context, int) error         { return nil }

const testCookieName = "nursery_session"

func sessionApp(t *testing.T) (*fiber.App, *memory.SessionStore) {
	t.Helper()

	store := memory.NewSessionStore()
	cfg := &config.Config{}
	cfg.Session.TTL = time.Hour

	authService := service.NewAuthService(
		emptyUserRepository{},
		store,
		memory.NewCsrfTokenStore(),
		resettoken.NewService("test-secret", time.Minute, "test"),
		email.NewNoopService(),
		cfg,
	)

	app := fiber.New()
	app.Use(SessionMiddleware(authService, testCookieName))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		p := PrincipalFromCtx(c)
		if p == nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.JSON(p)
	})
	return app, store
}

func TestSessionMiddlewareResolvesCookie(t *testing.T) {
	app, store := sessionApp(t)

	now := time.Now()
	session := &domain.Session{
		ID:        "live-session",
		Principal: domain.Principal{UserID: 7, Role: domain.RoleStaff},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := store.Create(context.Background(), session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: session.ID})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got domain.Principal
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.UserID != 7 || got.Role != domain.RoleStaff {
		t.Errorf("principal = %+v, want user 7 staff", got)
	}
}

func TestSessionMiddlewareWithoutCookie(t *testing.T) {
	app, _ := sessionApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

// A cookie naming a session the server does not know is simply
// unauthenticated, identical to no cookie at all.
func TestSessionMiddlewareUnknownCookie(t *testing.T) {
	app, _ := sessionApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "forged-session-id"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestSessionMiddlewareExpiredCookie(t *testing.T) {
	app, store := sessionApp(t)

	session := &domain.Session{
		ID:        "old-session",
		Principal: domain.Principal{UserID: 7, Role: domain.RoleStaff},
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := store.Create(context.Background(), session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: session.ID})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/config"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository/memory"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/email"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/hash"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/resettoken"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

type fixedUserRepository struct {
	user *domain.User
}

func (r *fixedUserRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}

func (r *fixedUserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, nil
}

func (r *fixedUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

func (r *fixedUserRepository) UpdatePassword(context.Context, int, string) error { return nil }
func (r *fixedUserRepository) TouchLastLogin(context.Context, int) error         { return nil }

func authTestApp(t *testing.T) *fiber.App {
	t.Helper()

	encoded, err := hash.Password("letmein-123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	nurseryID := 3
	repo := &fixedUserRepository{user: &domain.User{
		ID:           1,
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: encoded,
		Role:         domain.RoleNurseryAdmin,
		NurseryID:    &nurseryID,
	}}

	cfg := &config.Config{}
	cfg.Session.CookieName = "nursery_session"
	cfg.Session.TTL = time.Hour

	sessions := memory.NewSessionStore()
	csrfStore := memory.NewCsrfTokenStore()
	authService := service.NewAuthService(
		repo, sessions, csrfStore,
		resettoken.NewService("test-secret", time.Minute, "test"),
		email.NewNoopService(),
		cfg,
	)
	csrfService := service.NewCsrfService(csrfStore, cfg.Session.TTL)
	authHandler := NewAuthHandler(authService, csrfService, validator.New(), cfg)

	app := fiber.New()
	app.Use(middleware.SessionMiddleware(authService, cfg.Session.CookieName))
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/logout", authHandler.Logout)
	app.Get("/auth/me", authHandler.Me)
	app.Get("/auth/csrf-token", authHandler.CsrfToken)
	return app
}

func loginRequest(username, password string) *http.Request {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(fiber.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "nursery_session" {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestLoginSetsOpaqueSessionCookie(t *testing.T) {
	app := authTestApp(t)

	resp, err := app.Test(loginRequest("jane", "letmein-123"), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	cookie := sessionCookie(t, resp)
	if cookie.Value == "" {
		t.Error("cookie value is empty")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}

	var env struct {
		Success bool             `json:"success"`
		User    domain.Principal `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if env.User.Role != domain.RoleNurseryAdmin {
		t.Errorf("user role = %q, want nursery_admin", env.User.Role)
	}
}

// Wrong password and unknown username must be byte-identical responses.
func TestLoginFailureResponsesMatch(t *testing.T) {
	app := authTestApp(t)

	read := func(req *http.Request) (int, string) {
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			t.Fatalf("read body: %v", err)
		}
		return resp.StatusCode, buf.String()
	}

	wrongPassStatus, wrongPassBody := read(loginRequest("jane", "wrong-password"))
	unknownStatus, unknownBody := read(loginRequest("nobody", "wrong-password"))

	if wrongPassStatus != fiber.StatusUnauthorized || unknownStatus != fiber.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want both 401", wrongPassStatus, unknownStatus)
	}
	if wrongPassBody != unknownBody {
		t.Errorf("bodies differ: %q vs %q", wrongPassBody, unknownBody)
	}
}

func TestLogoutFlow(t *testing.T) {
	app := authTestApp(t)

	loginResp, err := app.Test(loginRequest("jane", "letmein-123"), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	cookie := sessionCookie(t, loginResp)

	// Fetch the CSRF token for the session.
	tokenReq := httptest.NewRequest(fiber.MethodGet, "/auth/csrf-token", nil)
	tokenReq.AddCookie(cookie)
	tokenResp, err := app.Test(tokenReq, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if tokenResp.StatusCode != fiber.StatusOK {
		t.Fatalf("csrf-token status = %d, want 200", tokenResp.StatusCode)
	}
	var tokenBody struct {
		CsrfToken string `json:"csrfToken"`
	}
	if err := json.NewDecoder(tokenResp.Body).Decode(&tokenBody); err != nil {
		t.Fatalf("decode token body: %v", err)
	}

	// Logout without the token is rejected while the session is live.
	bareLogout := httptest.NewRequest(fiber.MethodPost, "/auth/logout", nil)
	bareLogout.AddCookie(cookie)
	bareResp, err := app.Test(bareLogout, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if bareResp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("logout without token status = %d, want 400", bareResp.StatusCode)
	}

	// Logout with the token succeeds.
	logoutReq := httptest.NewRequest(fiber.MethodPost, "/auth/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutReq.Header.Set(middleware.HeaderCsrfToken, tokenBody.CsrfToken)
	logoutResp, err := app.Test(logoutReq, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if logoutResp.StatusCode != fiber.StatusOK {
		t.Fatalf("logout status = %d, want 200", logoutResp.StatusCode)
	}

	// A second logout with the dead cookie and no token still succeeds.
	repeatReq := httptest.NewRequest(fiber.MethodPost, "/auth/logout", nil)
	repeatReq.AddCookie(cookie)
	repeatResp, err := app.Test(repeatReq, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if repeatResp.StatusCode != fiber.StatusOK {
		t.Errorf("repeated logout status = %d, want 200", repeatResp.StatusCode)
	}

	// The session no longer resolves.
	meReq := httptest.NewRequest(fiber.MethodGet, "/auth/me", nil)
	meReq.AddCookie(cookie)
	meResp, err := app.Test(meReq, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if meResp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("me after logout status = %d, want 401", meResp.StatusCode)
	}
}

func TestCsrfTokenRequiresSession(t *testing.T) {
	app := authTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/auth/csrf-token", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository/memory"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
)

func injectSession(s *domain.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s != nil {
			c.Locals(LocalSession, s)
			c.Locals(LocalPrincipal, &s.Principal)
		}
		return c.Next()
	}
}

func csrfApp(csrfService *service.CsrfService, s *domain.Session) *fiber.App {
	app := fiber.New()
	app.Use(injectSession(s), CsrfMiddleware(csrfService))
	app.Get("/admin/resource", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/admin/resource", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func liveSession(id string) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:        id,
		Principal: domain.Principal{UserID: 1, Role: domain.RoleNurseryAdmin},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestCsrfMiddleware(t *testing.T) {
	csrfService := service.NewCsrfService(memory.NewCsrfTokenStore(), time.Hour)
	ctx := context.Background()

	tokenA, err := csrfService.IssueToken(ctx, "session-a")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	tokenB, err := csrfService.IssueToken(ctx, "session-b")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	tests := []struct {
		name       string
		method     string
		session    *domain.Session
		header     string
		token      string
		wantStatus int
	}{
		{"get passes without token", fiber.MethodGet, liveSession("session-a"), "", "", fiber.StatusOK},
		{"post without token rejected", fiber.MethodPost, liveSession("session-a"), "", "", fiber.StatusBadRequest},
		{"post with bound token passes", fiber.MethodPost, liveSession("session-a"), HeaderCsrfToken, tokenA, fiber.StatusOK},
		{"legacy header accepted", fiber.MethodPost, liveSession("session-a"), HeaderCsrfTokenLegacy, tokenA, fiber.StatusOK},
		{"other session's token rejected", fiber.MethodPost, liveSession("session-a"), HeaderCsrfToken, tokenB, fiber.StatusBadRequest},
		{"no session rejected", fiber.MethodPost, nil, HeaderCsrfToken, tokenA, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := csrfApp(csrfService, tt.session)

			req := httptest.NewRequest(tt.method, "/admin/resource", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.token)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

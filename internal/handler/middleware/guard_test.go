package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/policy"
)

// recordingAudit captures the internal denial reason handed to the audit
// hook.
type recordingAudit struct {
	route  string
	reason policy.Reason
	calls  int
}

func (r *recordingAudit) RecordDenial(_ context.Context, _ *domain.Principal, route string, reason policy.Reason) {
	r.route = route
	r.reason = reason
	r.calls++
}

// injectPrincipal fakes an upstream session resolution.
func injectPrincipal(p *domain.Principal) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if p != nil {
			c.Locals(LocalPrincipal, p)
		}
		return c.Next()
	}
}

func guardApp(p *domain.Principal, requiredRole domain.Role, resolver NurseryResolver, audit AuditRecorder) *fiber.App {
	app := fiber.New()
	app.Get("/admin/nurseries/:nurseryId/events",
		injectPrincipal(p),
		Guard(requiredRole, resolver, audit),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func intPtr(v int) *int { return &v }

func TestGuardUnauthenticated(t *testing.T) {
	audit := &recordingAudit{}
	app := guardApp(nil, domain.RoleStaff, NurseryFromParam("nurseryId"), audit)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/nurseries/3/events", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if audit.reason != policy.ReasonUnauthenticated {
		t.Errorf("audited reason = %q, want %q", audit.reason, policy.ReasonUnauthenticated)
	}
}

// Insufficient role and wrong nursery must both surface as the same
// generic 403; only the audit record distinguishes them.
func TestGuardDenialsAreGeneric(t *testing.T) {
	tests := []struct {
		name       string
		principal  *domain.Principal
		wantReason policy.Reason
	}{
		{
			name:       "insufficient role",
			principal:  &domain.Principal{UserID: 1, Role: domain.RoleRegular},
			wantReason: policy.ReasonInsufficientRole,
		},
		{
			name:       "wrong nursery",
			principal:  &domain.Principal{UserID: 2, Role: domain.RoleNurseryAdmin, NurseryID: intPtr(4)},
			wantReason: policy.ReasonWrongNursery,
		},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := &recordingAudit{}
			app := guardApp(tt.principal, domain.RoleStaff, NurseryFromParam("nurseryId"), audit)

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/nurseries/3/events", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != fiber.StatusForbidden {
				t.Errorf("status = %d, want 403", resp.StatusCode)
			}
			if audit.reason != tt.wantReason {
				t.Errorf("audited reason = %q, want %q", audit.reason, tt.wantReason)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			bodies = append(bodies, string(body))
		})
	}

	if len(bodies) == 2 && bodies[0] != bodies[1] {
		t.Errorf("denial bodies differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestGuardAllowsMatchingNursery(t *testing.T) {
	audit := &recordingAudit{}
	p := &domain.Principal{UserID: 1, Role: domain.RoleNurseryAdmin, NurseryID: intPtr(3)}
	app := guardApp(p, domain.RoleStaff, NurseryFromParam("nurseryId"), audit)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/nurseries/3/events", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if audit.calls != 0 {
		t.Errorf("audit called %d times on an allowed request", audit.calls)
	}
}

func TestGuardRejectsMalformedNurseryID(t *testing.T) {
	p := &domain.Principal{UserID: 1, Role: domain.RoleSuperAdmin}
	app := guardApp(p, domain.RoleStaff, NurseryFromParam("nurseryId"), &recordingAudit{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/nurseries/abc/events", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

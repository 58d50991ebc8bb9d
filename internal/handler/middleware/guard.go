package middleware

import (
	"context"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/policy"
)

// NurseryResolver extracts the target nursery id from a request, or nil
// when the route addresses no specific nursery.
type NurseryResolver func(c *fiber.Ctx) (*int, error)

// AuditRecorder receives the precise internal denial reason, which the
// HTTP response deliberately does not carry.
type AuditRecorder interface {
	RecordDenial(ctx context.Context, p *domain.Principal, route string, reason policy.Reason)
}

// NurseryFromParam resolves the target nursery from a path parameter.
func NurseryFromParam(name string) NurseryResolver {
	return func(c *fiber.Ctx) (*int, error) {
		raw := c.Params(name)
		if raw == "" {
			return nil, nil
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid nursery id")
		}
		return &id, nil
	}
}

// Guard enforces the authorization policy on a route. requiredRole may be
// empty for routes that only need a valid session; resolveNursery may be
// nil for routes with no nursery target. Denials map to 401 for missing
// authentication and a generic 403 for everything else; the specific rule
// that failed is only recorded internally.
func Guard(requiredRole domain.Role, resolveNursery NurseryResolver, audit AuditRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := PrincipalFromCtx(c)

		var targetNurseryID *int
		if resolveNursery != nil {
			id, err := resolveNursery(c)
			if err != nil {
				return err
			}
			targetNurseryID = id
		}

		decision := policy.Decide(principal, requiredRole, targetNurseryID)
		if decision.Allowed {
			return c.Next()
		}

		if audit != nil {
			audit.RecordDenial(c.Context(), principal, c.Path(), decision.Reason)
		} else {
			log.Printf("[GUARD] Denied %s %s: %s", c.Method(), c.Path(), decision.Reason)
		}

		if decision.Reason == policy.ReasonUnauthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "authentication required",
			})
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "access denied",
		})
	}
}

package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
)

// Locals keys set by SessionMiddleware.
const (
	LocalSession   = "session"
	LocalPrincipal = "principal"
)

// SessionMiddleware resolves the session cookie into the session record
// and principal snapshot. It never rejects: routes that require a
// principal enforce that through Guard. A store failure is a 500, never a
// silent "unauthenticated".
func SessionMiddleware(authService *service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(cookieName)
		if sessionID == "" {
			return c.Next()
		}

		session, err := authService.CurrentSession(c.Context(), sessionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "internal server error",
			})
		}
		if session == nil {
			// Cookie with no server-side record: unauthenticated.
			return c.Next()
		}

		c.Locals(LocalSession, session)
		c.Locals(LocalPrincipal, &session.Principal)
		return c.Next()
	}
}

// SessionFromCtx returns the resolved session, or nil.
func SessionFromCtx(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(LocalSession).(*domain.Session)
	return session
}

// PrincipalFromCtx returns the resolved principal, or nil.
func PrincipalFromCtx(c *fiber.Ctx) *domain.Principal {
	principal, _ := c.Locals(LocalPrincipal).(*domain.Principal)
	return principal
}

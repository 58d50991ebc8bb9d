package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
)

// CSRF header names. X-CSRF-Token is canonical; CSRF-Token is accepted for
// backward compatibility with older admin clients.
const (
	HeaderCsrfToken       = "X-CSRF-Token"
	HeaderCsrfTokenLegacy = "CSRF-Token"
)

// CsrfMiddleware validates the session-bound token on mutating requests.
// It runs before the route guard, so a forged cross-site request is
// rejected before any role logic executes, and its 400 response is
// distinguishable from both 401 and 403.
func CsrfMiddleware(csrfService *service.CsrfService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		presented := c.Get(HeaderCsrfToken)
		if presented == "" {
			presented = c.Get(HeaderCsrfTokenLegacy)
		}

		session := SessionFromCtx(c)
		ok, err := csrfService.Validate(c.Context(), session, presented)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "internal server error",
			})
		}
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "security validation failed, please refresh and try again",
			})
		}

		return c.Next()
	}
}

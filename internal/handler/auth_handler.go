package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/config"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	csrfService *service.CsrfService
	validator   *validator.Validator
	cfg         *config.Config
}

func NewAuthHandler(
	authService *service.AuthService,
	csrfService *service.CsrfService,
	validator *validator.Validator,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		csrfService: csrfService,
		validator:   validator,
		cfg:         cfg,
	}
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cfg.Server.Environment == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := h.authService.Login(c.Context(), req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		// Same status and body whether the username or the password was
		// wrong.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "invalid username or password",
		})
	}
	if err != nil {
		return serverError(c)
	}

	c.Cookie(h.sessionCookie(session.ID, session.ExpiresAt))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    session.Principal,
	})
}

// Logout handles POST /api/v1/auth/logout. Logging out with no live
// session succeeds with the same body, so a double logout never errors.
// The CSRF check only applies while a session is actually live.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)

	if session != nil {
		presented := c.Get(middleware.HeaderCsrfToken)
		if presented == "" {
			presented = c.Get(middleware.HeaderCsrfTokenLegacy)
		}

		ok, err := h.csrfService.Validate(c.Context(), session, presented)
		if err != nil {
			return serverError(c)
		}
		if !ok {
			return badRequest(c, "security validation failed, please refresh and try again")
		}

		if err := h.authService.Logout(c.Context(), session.ID); err != nil {
			return serverError(c)
		}
	}

	c.Cookie(h.sessionCookie("", time.Unix(0, 0)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)
	if principal == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "unauthenticated",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    principal,
	})
}

// CsrfToken handles GET /api/v1/auth/csrf-token. Tokens are bound to the
// session, so an unauthenticated caller has nothing to bind to; login
// itself is CSRF-exempt.
func (h *AuthHandler) CsrfToken(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	if session == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "authentication required",
		})
	}

	token, err := h.csrfService.IssueToken(c.Context(), session.ID)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"csrfToken": token})
}

// ForgotPassword handles POST /api/v1/auth/forgot-password. The response
// does not reveal whether the address matched an account.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.authService.ForgotPassword(c.Context(), req.Email); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "if the account exists, a reset email has been sent",
	})
}

// ResetPassword handles POST /api/v1/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	err := h.authService.ResetPassword(c.Context(), req.Token, req.Password)
	if errors.Is(err, service.ErrInvalidResetToken) {
		return badRequest(c, "invalid or expired reset token")
	}
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

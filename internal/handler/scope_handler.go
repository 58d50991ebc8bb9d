package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
)

type ScopeHandler struct {
	scopeService *service.ScopeService
}

func NewScopeHandler(scopeService *service.ScopeService) *ScopeHandler {
	return &ScopeHandler{scopeService: scopeService}
}

// GetScope handles GET /api/v1/admin/scope.
func (h *ScopeHandler) GetScope(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"scope":   session.Scope,
	})
}

// SetScope handles PUT /api/v1/admin/scope. A nil nursery_id asks for
// all-nurseries scope, which only a super_admin holds.
func (h *ScopeHandler) SetScope(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)

	var req struct {
		NurseryID *int `json:"nursery_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	scope, err := h.scopeService.TrySetScope(c.Context(), session, req.NurseryID)
	if errors.Is(err, service.ErrScopeNotPermitted) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "access denied",
		})
	}
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"scope":   scope,
	})
}

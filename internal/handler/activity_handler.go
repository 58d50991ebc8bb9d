package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List handles GET /api/v1/admin/activity-logs. Entries are filtered by
// the session's resolved scope, not by any client-supplied nursery id.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	entries, err := h.activityService.List(c.Context(), session.Scope, limit, offset)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "logs": entries})
}

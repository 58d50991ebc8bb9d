package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *validator.Validator
}

func NewEventHandler(eventService *service.EventService, validator *validator.Validator) *EventHandler {
	return &EventHandler{eventService: eventService, validator: validator}
}

// PublicList handles GET /api/v1/nurseries/:nurseryId/events, published
// events only.
func (h *EventHandler) PublicList(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	events, err := h.eventService.List(c.Context(), domain.SingleNursery(nurseryID), true)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "events": events})
}

// List handles GET /api/v1/admin/nurseries/:nurseryId/events. The guard
// has already checked the path nursery against the principal, so the
// query scope is pinned to the path target.
func (h *EventHandler) List(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	events, err := h.eventService.List(c.Context(), domain.SingleNursery(nurseryID), false)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "events": events})
}

// Get handles GET /api/v1/admin/nurseries/:nurseryId/events/:id.
func (h *EventHandler) Get(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventService.Get(c.Context(), domain.SingleNursery(nurseryID), id)
	if err != nil {
		return serverError(c)
	}
	if event == nil {
		return notFound(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "event": event})
}

// Create handles POST /api/v1/admin/nurseries/:nurseryId/events.
func (h *EventHandler) Create(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	var event domain.Event
	if err := c.BodyParser(&event); err != nil {
		return badRequest(c, "invalid request body")
	}
	// The owning nursery comes from the guarded path, never the body.
	event.NurseryID = nurseryID

	if err := h.validator.Validate(event); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.eventService.Create(c.Context(), *principal, &event); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "event": event})
}

// Update handles PUT /api/v1/admin/nurseries/:nurseryId/events/:id.
func (h *EventHandler) Update(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	var event domain.Event
	if err := c.BodyParser(&event); err != nil {
		return badRequest(c, "invalid request body")
	}
	event.ID = id
	event.NurseryID = nurseryID

	if err := h.validator.Validate(event); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.eventService.Update(c.Context(), *principal, domain.SingleNursery(nurseryID), &event); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "event": event})
}

// Delete handles DELETE /api/v1/admin/nurseries/:nurseryId/events/:id.
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.eventService.Delete(c.Context(), *principal, domain.SingleNursery(nurseryID), nurseryID, id); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

type NurseryHandler struct {
	nurseryService *service.NurseryService
	validator      *validator.Validator
}

func NewNurseryHandler(nurseryService *service.NurseryService, validator *validator.Validator) *NurseryHandler {
	return &NurseryHandler{nurseryService: nurseryService, validator: validator}
}

// PublicList handles GET /api/v1/nurseries.
func (h *NurseryHandler) PublicList(c *fiber.Ctx) error {
	nurseries, err := h.nurseryService.List(c.Context())
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "nurseries": nurseries})
}

// PublicGet handles GET /api/v1/nurseries/:nurseryId.
func (h *NurseryHandler) PublicGet(c *fiber.Ctx) error {
	id, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	nursery, err := h.nurseryService.Get(c.Context(), id)
	if err != nil {
		return serverError(c)
	}
	if nursery == nil {
		return notFound(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "nursery": nursery})
}

// Create handles POST /api/v1/admin/nurseries (super_admin).
func (h *NurseryHandler) Create(c *fiber.Ctx) error {
	var nursery domain.Nursery
	if err := c.BodyParser(&nursery); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.validator.Validate(nursery); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.nurseryService.Create(c.Context(), *principal, &nursery); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "nursery": nursery})
}

// Update handles PUT /api/v1/admin/nurseries/:nurseryId (super_admin).
func (h *NurseryHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	var nursery domain.Nursery
	if err := c.BodyParser(&nursery); err != nil {
		return badRequest(c, "invalid request body")
	}
	nursery.ID = id

	if err := h.validator.Validate(nursery); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.nurseryService.Update(c.Context(), *principal, &nursery); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "nursery": nursery})
}

// Delete handles DELETE /api/v1/admin/nurseries/:nurseryId (super_admin).
func (h *NurseryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.nurseryService.Delete(c.Context(), *principal, id); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

// GetSettings handles GET /api/v1/admin/settings/:nurseryId.
func (h *NurseryHandler) GetSettings(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	settings, err := h.nurseryService.GetSettings(c.Context(), nurseryID)
	if err != nil {
		return serverError(c)
	}
	if settings == nil {
		return notFound(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "settings": settings})
}

// UpdateSettings handles PUT /api/v1/admin/settings/:nurseryId
// (super_admin).
func (h *NurseryHandler) UpdateSettings(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	var settings domain.NurserySettings
	if err := c.BodyParser(&settings); err != nil {
		return badRequest(c, "invalid request body")
	}
	settings.NurseryID = nurseryID

	if err := h.validator.Validate(settings); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.nurseryService.UpdateSettings(c.Context(), *principal, &settings); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "settings": settings})
}

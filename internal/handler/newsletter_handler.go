package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

type NewsletterHandler struct {
	newsletterService *service.NewsletterService
	validator         *validator.Validator
}

func NewNewsletterHandler(newsletterService *service.NewsletterService, validator *validator.Validator) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService, validator: validator}
}

// PublicList handles GET /api/v1/nurseries/:nurseryId/newsletters.
func (h *NewsletterHandler) PublicList(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	newsletters, err := h.newsletterService.List(c.Context(), domain.SingleNursery(nurseryID), true)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "newsletters": newsletters})
}

// List handles GET /api/v1/admin/nurseries/:nurseryId/newsletters.
func (h *NewsletterHandler) List(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	newsletters, err := h.newsletterService.List(c.Context(), domain.SingleNursery(nurseryID), false)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "newsletters": newsletters})
}

// Create handles POST /api/v1/admin/nurseries/:nurseryId/newsletters.
func (h *NewsletterHandler) Create(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	var newsletter domain.Newsletter
	if err := c.BodyParser(&newsletter); err != nil {
		return badRequest(c, "invalid request body")
	}
	newsletter.NurseryID = nurseryID

	if err := h.validator.Validate(newsletter); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.newsletterService.Create(c.Context(), *principal, &newsletter); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "newsletter": newsletter})
}

// Update handles PUT /api/v1/admin/nurseries/:nurseryId/newsletters/:id.
func (h *NewsletterHandler) Update(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	var newsletter domain.Newsletter
	if err := c.BodyParser(&newsletter); err != nil {
		return badRequest(c, "invalid request body")
	}
	newsletter.ID = id
	newsletter.NurseryID = nurseryID

	if err := h.validator.Validate(newsletter); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.newsletterService.Update(c.Context(), *principal, domain.SingleNursery(nurseryID), &newsletter); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "newsletter": newsletter})
}

// Delete handles DELETE /api/v1/admin/nurseries/:nurseryId/newsletters/:id.
func (h *NewsletterHandler) Delete(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.newsletterService.Delete(c.Context(), *principal, domain.SingleNursery(nurseryID), nurseryID, id); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

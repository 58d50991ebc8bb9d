package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

type ContactHandler struct {
	contactService *service.ContactService
	validator      *validator.Validator
}

func NewContactHandler(contactService *service.ContactService, validator *validator.Validator) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator}
}

// Submit handles POST /api/v1/contact (public).
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var submission domain.ContactSubmission
	if err := c.BodyParser(&submission); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.validator.Validate(submission); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.contactService.Submit(c.Context(), &submission); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "thank you, we will be in touch soon",
	})
}

// List handles GET /api/v1/admin/contact-submissions.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)

	submissions, err := h.contactService.List(c.Context(), session.Scope)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "submissions": submissions})
}

// Delete handles DELETE /api/v1/admin/contact-submissions/:id.
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	session := middleware.SessionFromCtx(c)
	principal := middleware.PrincipalFromCtx(c)

	if err := h.contactService.Delete(c.Context(), *principal, session.Scope, id); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

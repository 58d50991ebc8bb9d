package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

type StaffHandler struct {
	staffService *service.StaffService
	validator    *validator.Validator
}

func NewStaffHandler(staffService *service.StaffService, validator *validator.Validator) *StaffHandler {
	return &StaffHandler{staffService: staffService, validator: validator}
}

// List handles GET /api/v1/admin/nurseries/:nurseryId/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	members, err := h.staffService.List(c.Context(), domain.SingleNursery(nurseryID))
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "staff": members})
}

// Create handles POST /api/v1/admin/nurseries/:nurseryId/staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	var member domain.StaffMember
	if err := c.BodyParser(&member); err != nil {
		return badRequest(c, "invalid request body")
	}
	member.NurseryID = nurseryID

	if err := h.validator.Validate(member); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.staffService.Create(c.Context(), *principal, &member); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "member": member})
}

// Update handles PUT /api/v1/admin/nurseries/:nurseryId/staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	var member domain.StaffMember
	if err := c.BodyParser(&member); err != nil {
		return badRequest(c, "invalid request body")
	}
	member.ID = id
	member.NurseryID = nurseryID

	if err := h.validator.Validate(member); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.staffService.Update(c.Context(), *principal, domain.SingleNursery(nurseryID), &member); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "member": member})
}

// Delete handles DELETE /api/v1/admin/nurseries/:nurseryId/staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.staffService.Delete(c.Context(), *principal, domain.SingleNursery(nurseryID), nurseryID, id); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

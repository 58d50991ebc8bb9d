package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
	validator      *validator.Validator
}

func NewGalleryHandler(galleryService *service.GalleryService, validator *validator.Validator) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, validator: validator}
}

// PublicList handles GET /api/v1/nurseries/:nurseryId/gallery.
func (h *GalleryHandler) PublicList(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	images, err := h.galleryService.List(c.Context(), domain.SingleNursery(nurseryID))
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "images": images})
}

// List handles GET /api/v1/admin/nurseries/:nurseryId/gallery.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	return h.PublicList(c)
}

// Create handles POST /api/v1/admin/nurseries/:nurseryId/gallery.
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}

	var image domain.GalleryImage
	if err := c.BodyParser(&image); err != nil {
		return badRequest(c, "invalid request body")
	}
	image.NurseryID = nurseryID

	if err := h.validator.Validate(image); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.galleryService.Create(c.Context(), *principal, &image); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "image": image})
}

// Update handles PUT /api/v1/admin/nurseries/:nurseryId/gallery/:id.
func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	var image domain.GalleryImage
	if err := c.BodyParser(&image); err != nil {
		return badRequest(c, "invalid request body")
	}
	image.ID = id
	image.NurseryID = nurseryID

	if err := h.validator.Validate(image); err != nil {
		return badRequest(c, err.Error())
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.galleryService.Update(c.Context(), *principal, domain.SingleNursery(nurseryID), &image); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "image": image})
}

// Delete handles DELETE /api/v1/admin/nurseries/:nurseryId/gallery/:id.
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	nurseryID, err := paramInt(c, "nurseryId")
	if err != nil {
		return err
	}
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	principal := middleware.PrincipalFromCtx(c)
	if err := h.galleryService.Delete(c.Context(), *principal, domain.SingleNursery(nurseryID), nurseryID, id); err != nil {
		return repoError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Stashed/internal/middleware"
	"Stashed/internal/models"
	"Stashed/internal/services"
)

type ImageHandler struct {
	service services.ImageService
	log     services.LogService
}

func NewImageHandler(service services.ImageService, log services.LogService) *ImageHandler {
	return &ImageHandler{service: service, log: log}
}

func (h *ImageHandler) UploadItemImage(c *fiber.Ctx) error {
	return h.upload(c, models.KindItem)
}

func (h *ImageHandler) UploadContainerImage(c *fiber.Ctx) error {
	return h.upload(c, models.KindContainer)
}

func (h *ImageHandler) upload(c *fiber.Ctx, kind models.ParentKind) error {
	parentID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid parent ID")
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	content, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "could not read file")
	}
	defer content.Close()

	image, err := h.service.Upload(
		c.UserContext(),
		middleware.OwnerID(c),
		kind,
		parentID,
		fileHeader.Filename,
		content,
		fileHeader.Size,
	)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.Status(http.StatusCreated).JSON(image)
}

func (h *ImageHandler) ListItemImages(c *fiber.Ctx) error {
	return h.list(c, models.KindItem)
}

func (h *ImageHandler) ListContainerImages(c *fiber.Ctx) error {
	return h.list(c, models.KindContainer)
}

func (h *ImageHandler) list(c *fiber.Ctx, kind models.ParentKind) error {
	parentID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid parent ID")
	}
	images, err := h.service.ListForParent(c.UserContext(), middleware.OwnerID(c), kind, parentID)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(images)
}

func (h *ImageHandler) ReorderItemImages(c *fiber.Ctx) error {
	return h.reorder(c, models.KindItem)
}

func (h *ImageHandler) ReorderContainerImages(c *fiber.Ctx) error {
	return h.reorder(c, models.KindContainer)
}

func (h *ImageHandler) reorder(c *fiber.Ctx, kind models.ParentKind) error {
	parentID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid parent ID")
	}
	var req struct {
		Orders []struct {
			ID           uint `json:"id" validate:"required"`
			DisplayOrder int  `json:"display_order" validate:"required"`
		} `json:"orders" validate:"required,min=1"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "orders must map image ids to display orders")
	}
	orders := make(map[uint]int, len(req.Orders))
	for _, entry := range req.Orders {
		orders[entry.ID] = entry.DisplayOrder
	}

	err := h.service.Reorder(c.UserContext(), middleware.OwnerID(c), kind, parentID, orders)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ImageHandler) DetachItemImage(c *fiber.Ctx) error {
	return h.detach(c, models.KindItem)
}

func (h *ImageHandler) DetachContainerImage(c *fiber.Ctx) error {
	return h.detach(c, models.KindContainer)
}

func (h *ImageHandler) detach(c *fiber.Ctx, kind models.ParentKind) error {
	parentID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid parent ID")
	}
	imageID, ok := parseID(c, "imageId")
	if !ok {
		return badRequest(c, "invalid image ID")
	}
	err := h.service.Detach(c.UserContext(), middleware.OwnerID(c), kind, parentID, imageID)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

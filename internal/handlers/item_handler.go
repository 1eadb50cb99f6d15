package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Stashed/internal/middleware"
	"Stashed/internal/services"
)

type ItemHandler struct {
	service services.ItemService
	log     services.LogService
}

func NewItemHandler(service services.ItemService, log services.LogService) *ItemHandler {
	return &ItemHandler{service: service, log: log}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		CategoryID  uint   `json:"category_id" validate:"required"`
		ContainerID uint   `json:"container_id" validate:"required"`
		IsIn        *bool  `json:"is_in"`
		Quantity    *int   `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "name, category_id and container_id are required")
	}

	item, err := h.service.CreateItem(c.UserContext(), middleware.OwnerID(c), services.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ContainerID: req.ContainerID,
		IsIn:        req.IsIn,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid item ID")
	}
	item, err := h.service.GetItemByID(c.UserContext(), middleware.OwnerID(c), id)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid item ID")
	}
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		CategoryID  *uint   `json:"category_id"`
		ContainerID *uint   `json:"container_id"`
		IsIn        *bool   `json:"is_in"`
		Quantity    *int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	item, err := h.service.UpdateItem(c.UserContext(), middleware.OwnerID(c), id, services.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ContainerID: req.ContainerID,
		IsIn:        req.IsIn,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid item ID")
	}
	if err := h.service.DeleteItem(c.UserContext(), middleware.OwnerID(c), id); err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.service.GetItems(c.UserContext(), middleware.OwnerID(c), parseListOptions(c))
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(items)
}

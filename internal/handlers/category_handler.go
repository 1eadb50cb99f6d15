package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Stashed/internal/middleware"
	"Stashed/internal/services"
)

type CategoryHandler struct {
	service services.CategoryService
	log     services.LogService
}

func NewCategoryHandler(service services.CategoryService, log services.LogService) *CategoryHandler {
	return &CategoryHandler{service: service, log: log}
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "name is required")
	}

	category, err := h.service.CreateCategory(c.UserContext(), middleware.OwnerID(c), req.Name)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.Status(http.StatusCreated).JSON(category)
}

func (h *CategoryHandler) GetCategoryByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid category ID")
	}
	category, err := h.service.GetCategoryByID(c.UserContext(), middleware.OwnerID(c), id)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid category ID")
	}
	var req struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "name is required")
	}

	category, err := h.service.UpdateCategory(c.UserContext(), middleware.OwnerID(c), id, req.Name)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid category ID")
	}
	if err := h.service.DeleteCategory(c.UserContext(), middleware.OwnerID(c), id); err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories(c.UserContext(), middleware.OwnerID(c), parseListOptions(c))
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(categories)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Stashed/internal/middleware"
	"Stashed/internal/services"
)

type ContainerHandler struct {
	service services.ContainerService
	log     services.LogService
}

func NewContainerHandler(service services.ContainerService, log services.LogService) *ContainerHandler {
	return &ContainerHandler{service: service, log: log}
}

func (h *ContainerHandler) CreateContainer(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "name is required")
	}

	container, err := h.service.CreateContainer(c.UserContext(), middleware.OwnerID(c), req.Name, req.Description)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.Status(http.StatusCreated).JSON(container)
}

func (h *ContainerHandler) GetContainerByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid container ID")
	}
	container, err := h.service.GetContainerByID(c.UserContext(), middleware.OwnerID(c), id)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(container)
}

func (h *ContainerHandler) UpdateContainer(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid container ID")
	}
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	container, err := h.service.UpdateContainer(c.UserContext(), middleware.OwnerID(c), id, req.Name, req.Description)
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(container)
}

func (h *ContainerHandler) DeleteContainer(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid container ID")
	}
	if err := h.service.DeleteContainer(c.UserContext(), middleware.OwnerID(c), id); err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	containers, err := h.service.GetContainers(c.UserContext(), middleware.OwnerID(c), parseListOptions(c))
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(containers)
}

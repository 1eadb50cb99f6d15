package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Stashed/internal/middleware"
	"Stashed/internal/services"
)

type ProfileHandler struct {
	service services.TenantService
	log     services.LogService
}

func NewProfileHandler(service services.TenantService, log services.LogService) *ProfileHandler {
	return &ProfileHandler{service: service, log: log}
}

// DeleteProfile removes the caller's tenant and everything it owns. Wired
// to the identity provider's account-deletion hook.
func (h *ProfileHandler) DeleteProfile(c *fiber.Ctx) error {
	if err := h.service.DeleteProfile(c.UserContext(), middleware.OwnerID(c)); err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Stashed/internal/middleware"
	"Stashed/internal/services"
)

type StatsHandler struct {
	service services.StatsService
	log     services.LogService
}

func NewStatsHandler(service services.StatsService, log services.LogService) *StatsHandler {
	return &StatsHandler{service: service, log: log}
}

func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics(c.UserContext(), middleware.OwnerID(c))
	if err != nil {
		return writeError(c, h.log.Log, err)
	}
	return c.JSON(stats)
}

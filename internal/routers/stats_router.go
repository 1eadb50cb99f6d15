package routers

import (
	"github.com/gofiber/fiber/v2"

	"Stashed/cmd"
)

func SetupStatsRouter(router fiber.Router, server *cmd.Server) {
	router.Get("/stats", server.StatsHandler.GetStatistics)
}

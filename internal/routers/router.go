package routers

import (
	"github.com/gofiber/fiber/v2"

	"Stashed/cmd"
	"Stashed/internal/config"
	"Stashed/internal/middleware"
)

func SetupRoutes(app *fiber.App, server *cmd.Server, cfg *config.Configuration) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/", middleware.RequireTenant(server.TenantService, []byte(cfg.Auth.JWTSecret)))
	SetupContainerRouter(api, server)
	SetupCategoryRouter(api, server)
	SetupItemRouter(api, server)
	SetupImageRouter(api, server)
	SetupStatsRouter(api, server)
	api.Delete("/profile", server.ProfileHandler.DeleteProfile)
}

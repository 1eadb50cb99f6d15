package routers

import (
	"github.com/gofiber/fiber/v2"

	"Stashed/cmd"
)

func SetupContainerRouter(router fiber.Router, server *cmd.Server) {
	containerHandler := server.ContainerHandler
	router.Get("/containers", containerHandler.ListContainers)
	router.Post("/containers", containerHandler.CreateContainer)
	router.Get("/containers/:id", containerHandler.GetContainerByID)
	router.Put("/containers/:id", containerHandler.UpdateContainer)
	router.Delete("/containers/:id", containerHandler.DeleteContainer)
}

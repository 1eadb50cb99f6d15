package routers

import (
	"github.com/gofiber/fiber/v2"

	"Stashed/cmd"
)

func SetupItemRouter(router fiber.Router, server *cmd.Server) {
	itemHandler := server.ItemHandler
	router.Get("/items", itemHandler.ListItems)
	router.Post("/items", itemHandler.CreateItem)
	router.Get("/items/:id", itemHandler.GetItemByID)
	router.Put("/items/:id", itemHandler.UpdateItem)
	router.Delete("/items/:id", itemHandler.DeleteItem)
}

package routers

import (
	"github.com/gofiber/fiber/v2"

	"Stashed/cmd"
)

func SetupCategoryRouter(router fiber.Router, server *cmd.Server) {
	categoryHandler := server.CategoryHandler
	router.Get("/categories", categoryHandler.ListCategories)
	router.Post("/categories", categoryHandler.CreateCategory)
	router.Get("/categories/:id", categoryHandler.GetCategoryByID)
	router.Put("/categories/:id", categoryHandler.UpdateCategory)
	router.Delete("/categories/:id", categoryHandler.DeleteCategory)
}

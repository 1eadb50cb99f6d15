package routers

import (
	"github.com/gofiber/fiber/v2"

	"Stashed/cmd"
)

func SetupImageRouter(router fiber.Router, server *cmd.Server) {
	imageHandler := server.ImageHandler

	router.Post("/items/:id/images", imageHandler.UploadItemImage)
	router.Get("/items/:id/images", imageHandler.ListItemImages)
	router.Put("/items/:id/images/order", imageHandler.ReorderItemImages)
	router.Delete("/items/:id/images/:imageId", imageHandler.DetachItemImage)

	router.Post("/containers/:id/images", imageHandler.UploadContainerImage)
	router.Get("/containers/:id/images", imageHandler.ListContainerImages)
	router.Put("/containers/:id/images/order", imageHandler.ReorderContainerImages)
	router.Delete("/containers/:id/images/:imageId", imageHandler.DetachContainerImage)
}

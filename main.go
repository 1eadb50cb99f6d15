package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Stashed/database"
	"Stashed/internal/routers"
)

func main() {
	// .env is optional; the environment itself wins.
	_ = godotenv.Load()

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)

	server.Janitor.StartSweepCycle()
	defer server.Janitor.Stop()

	cfg := server.Cfg
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Stashed",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server, cfg)

	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"Stashed/cmd"
	"Stashed/database"
	"Stashed/internal/blob"
	"Stashed/internal/config"
	"Stashed/internal/handlers"
	"Stashed/internal/repository"
	"Stashed/internal/services"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("stashed.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		blob.NewLocalStore,
		repository.NewProfileRepository,
		repository.NewContainerRepository,
		repository.NewCategoryRepository,
		repository.NewItemRepository,
		repository.NewImageRepository,
		services.NewLogService,
		services.NewTenantService,
		services.NewContainerService,
		services.NewCategoryService,
		services.NewItemService,
		services.NewImageService,
		services.NewStatsService,
		services.NewJanitorService,
		handlers.NewContainerHandler,
		handlers.NewCategoryHandler,
		handlers.NewItemHandler,
		handlers.NewImageHandler,
		handlers.NewStatsHandler,
		handlers.NewProfileHandler,
		Provider,
	)
	return nil, nil
}

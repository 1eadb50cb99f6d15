package cmd

import (
	"gorm.io/gorm"

	"Stashed/internal/config"
	"Stashed/internal/handlers"
	"Stashed/internal/services"
)

type Server struct {
	Cfg              *config.Configuration
	DB               *gorm.DB
	LogService       services.LogService
	TenantService    services.TenantService
	ContainerHandler *handlers.ContainerHandler
	CategoryHandler  *handlers.CategoryHandler
	ItemHandler      *handlers.ItemHandler
	ImageHandler     *handlers.ImageHandler
	StatsHandler     *handlers.StatsHandler
	ProfileHandler   *handlers.ProfileHandler
	Janitor          *services.Janitor
}

func NewServer(
	cfg *config.Configuration,
	db *gorm.DB,
	logService services.LogService,
	tenantService services.TenantService,
	containerHandler *handlers.ContainerHandler,
	categoryHandler *handlers.CategoryHandler,
	itemHandler *handlers.ItemHandler,
	imageHandler *handlers.ImageHandler,
	statsHandler *handlers.StatsHandler,
	profileHandler *handlers.ProfileHandler,
	janitor *services.Janitor,
) *Server {
	return &Server{
		Cfg:              cfg,
		DB:               db,
		LogService:       logService,
		TenantService:    tenantService,
		ContainerHandler: containerHandler,
		CategoryHandler:  categoryHandler,
		ItemHandler:      itemHandler,
		ImageHandler:     imageHandler,
		StatsHandler:     statsHandler,
		ProfileHandler:   profileHandler,
		Janitor:          janitor,
	}
}

package database

import (
	"Stashed/internal/models"
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
)

// SetupDatabase opens the postgres connection and migrates the schema.
//
// Every repository query filters on owner_id. Deployments that want the
// storage engine to enforce the same boundary can additionally enable
// row-level security on the owned tables, with the session tenant set per
// request by a proxy or pooler:
//
//	ALTER TABLE items ENABLE ROW LEVEL SECURITY;
//	CREATE POLICY items_owner ON items
//	    USING (owner_id = current_setting('app.owner_id')::bigint);
//
// (likewise for containers, categories and images). The service itself
// connects as a single role and keeps the application-level filters either
// way.
func SetupDatabase() (*gorm.DB, error) {
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) == "" && envVariable != "DB_SSLMODE" {
			return nil, fmt.Errorf("%s environment variable not set", envVariable)
		}
		if envVariable == "DB_SSLMODE" && os.Getenv(envVariable) == "" {
			err := os.Setenv("DB_SSLMODE", "disable")
			if err != nil {
				return nil, err
			}
		}
	}
	dsn := os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}")

	// TranslateError maps duplicate-key and FK violations onto gorm's
	// portable sentinels; the services branch on those.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.Profile{},
		&models.Container{},
		&models.Category{},
		&models.Item{},
		&models.Image{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

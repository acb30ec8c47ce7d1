package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "skyharbor/booking/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// MigrateCatalog creates or updates the catalog and user tables.
func MigrateCatalog(db *gorm.DB) error {
	return db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Airport{},
		&gormModels.AirplaneType{},
		&gormModels.Airplane{},
		&gormModels.Crew{},
		&gormModels.Route{},
		&gormModels.Flight{},
	)
}

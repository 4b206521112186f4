package database

import (
	"fmt"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/config"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	chatmodels "github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models/chat"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens (once) the GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model. The chat
// tables live in their own "chat" schema, which must exist first.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS chat").Error; err != nil {
		return fmt.Errorf("failed to create chat schema: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Quote{},
		&models.Invoice{},
		&models.Reservation{},
		&models.Notification{},
		&chatmodels.Conversation{},
		&chatmodels.Message{},
	)
}

package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models.
func Migrate() error {
	return DB.AutoMigrate(AllModels()...)
}

// AllModels lists every persisted model; shared with test setup.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Organization{},
		&models.OrganizationSettings{},
		&models.OrganizationUser{},
		&models.Role{},
		&models.OrgUserRole{},
		&models.Project{},
		&models.Task{},
		&models.TaskComment{},
		&models.Attachment{},
		&models.TaskChecklistItem{},
		&models.Employee{},
		&models.Team{},
		&models.SystemLog{},
	}
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

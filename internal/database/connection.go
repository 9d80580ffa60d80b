// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/shop-admin/internal/config"
	"github.com/javajoker/shop-admin/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Database connection established")
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.AutoMigrate(&models.Shop{}, &models.Product{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

// SeedInitialData fills an empty database with the demo catalog.
func SeedInitialData(db *gorm.DB) error {
	var shopCount int64
	if err := db.Model(&models.Shop{}).Count(&shopCount).Error; err != nil {
		return fmt.Errorf("failed to count shops: %w", err)
	}
	if shopCount > 0 {
		logrus.Debug("Database already has shops, skipping seed")
		return nil
	}

	logrus.Info("Seeding initial data...")

	return WithTransaction(db, func(tx *gorm.DB) error {
		shopIDs := make([]string, len(seedShops))
		for i := range seedShops {
			shop := seedShops[i]
			if err := tx.Create(&shop).Error; err != nil {
				return fmt.Errorf("failed to seed shop %s: %w", shop.Name, err)
			}
			shopIDs[i] = shop.ID
		}

		for _, sp := range seedProducts {
			product := sp.product
			product.ShopID = shopIDs[sp.shop]
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", product.Name, err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"shops":    len(seedShops),
			"products": len(seedProducts),
		}).Info("Initial data seeding completed")
		return nil
	})
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

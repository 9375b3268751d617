package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/pkg/errors"
)

// Open connects to the configured widget store and migrates its schema
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.NewDatabaseError("failed to connect to database", err)
	}

	if cfg.Driver == config.DatabaseDriverSQLite {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the widget tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&WidgetModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate database", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		return postgres.Open(cfg.GetDSN()), nil
	case config.DatabaseDriverSQLite:
		if cfg.SQLitePath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
				return nil, errors.NewDatabaseError("failed to create database directory", err)
			}
		}
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}
}

package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// Database is a lazy connection handle: nothing is dialed until the first
// Get call, and a once-established *gorm.DB is reused process-wide. The
// handle is injected into the repositories that need it, so no package-level
// connection state exists.
type Database struct {
	cfg *Config

	mu sync.Mutex
	db *gorm.DB
}

func NewDatabase(cfg *Config) *Database {
	return &Database{cfg: cfg}
}

// Get returns the shared connection, establishing it on first use with up
// to ConnectMaxAttempts attempts spaced ConnectRetryDelay apart.
func (d *Database) Get() (*gorm.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return d.db, nil
	}

	logLevel := logger.Silent
	if d.cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	dsn := d.cfg.GetDatabaseDSN()
	maxAttempts := d.cfg.Database.ConnectMaxAttempts

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logLevel),
		})
		if err == nil {
			if err := db.AutoMigrate(&models.Document{}, &models.Feedback{}); err != nil {
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}

			log.Println("✅ Database connected successfully")
			d.db = db
			return d.db, nil
		}

		lastErr = err
		if attempt < maxAttempts {
			log.Printf("⚠️  Database connection attempt %d/%d failed: %v. Retrying...\n", attempt, maxAttempts, err)
			time.Sleep(d.cfg.Database.ConnectRetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxAttempts, lastErr)
}

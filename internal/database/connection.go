package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/matapizza/matapizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

const maxConnectAttempts = 5

// InitDatabase opens the configured database and verifies it with a ping.
// Transient failures are retried with a doubling backoff; an unknown driver
// fails immediately.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)
	switch driver {
	case "postgres", "postgresql", "sqlite", "":
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	var lastErr error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err := connect(driver, cfg.DSN())
		if err == nil {
			log.WithFields(logrus.Fields{
				"db_driver": driver,
				"attempt":   attempt,
			}).Info("Database connection established")
			return db, nil
		}
		lastErr = err
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < maxConnectAttempts {
			// 1s, 2s, 4s, ... doubling per attempt
			delay := time.Second << (attempt - 1)
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxConnectAttempts, lastErr)
}

func connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	configurePool(sqlDB)
	return db, nil
}

// Migrate creates or updates the four catalog tables. Migration order follows
// the foreign keys: pizza types before pizzas, orders before order details.
func Migrate(db *gorm.DB) error {
	log.Info("Running schema migration")
	return db.AutoMigrate(
		&models.PizzaType{},
		&models.Pizza{},
		&models.Order{},
		&models.OrderDetail{},
	)
}

func configurePool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
}

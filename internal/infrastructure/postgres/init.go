package postgres

import (
	"fmt"
	"log"

	"github.com/LavaJover/shvark-price-collector/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the connection pool without pinging, so the process can start
// before the prices database exists. EnsureSchema creates it later.
func InitDB(cfg *config.PriceCollectorConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PricesDB.DSN()), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	// the collector writes sequentially, one transaction at a time
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

func MustInitDB(cfg *config.PriceCollectorConfig) *gorm.DB {
	db, err := InitDB(cfg)
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	return db
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-price-collector/internal/config"
	"github.com/lib/pq"
)

// duplicate_database, raised when another process created it first
const pqDuplicateDatabase = "42P04"

// EnsureDatabase creates cfg.Name through the maintenance database when it
// does not exist yet.
func EnsureDatabase(ctx context.Context, cfg config.PricesDB) error {
	db, err := sql.Open("postgres", cfg.MaintenanceDSN())
	if err != nil {
		return fmt.Errorf("failed to open maintenance db: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.Name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to look up database %s: %w", cfg.Name, err)
	}
	if exists {
		return nil
	}

	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.Name)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateDatabase {
			return nil
		}
		return fmt.Errorf("failed to create database %s: %w", cfg.Name, err)
	}
	return nil
}

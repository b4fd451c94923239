package repository

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

const insertBatchSize = 500

type DefaultPriceRepository struct {
	DB             *gorm.DB
	ensureDatabase func(ctx context.Context) error
}

// NewDefaultPriceRepository takes an optional ensureDatabase hook that runs
// before the table is migrated.
func NewDefaultPriceRepository(db *gorm.DB, ensureDatabase func(ctx context.Context) error) *DefaultPriceRepository {
	return &DefaultPriceRepository{
		DB:             db,
		ensureDatabase: ensureDatabase,
	}
}

func (r *DefaultPriceRepository) EnsureSchema(ctx context.Context) error {
	if r.ensureDatabase != nil {
		if err := r.ensureDatabase(ctx); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrStore, err)
		}
	}
	if err := r.DB.WithContext(ctx).AutoMigrate(&models.PriceModel{}); err != nil {
		return fmt.Errorf("%w: failed to migrate prices table: %w", domain.ErrStore, err)
	}
	return nil
}

func (r *DefaultPriceRepository) SaveRecords(ctx context.Context, records []domain.NormalizedRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := mappers.ToGORMPrices(records)
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("%w: failed to insert %d records: %w", domain.ErrStore, len(records), err)
	}
	return nil
}

func (r *DefaultPriceRepository) CountRecords(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.PriceModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

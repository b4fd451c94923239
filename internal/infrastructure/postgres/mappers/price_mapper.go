package mappers

import (
	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/postgres/models"
)

func ToGORMPrice(record domain.NormalizedRecord) models.PriceModel {
	return models.PriceModel{
		Timestamp: record.Timestamp,
		Market:    record.Market,
		Price:     record.Price,
	}
}

func ToGORMPrices(records []domain.NormalizedRecord) []models.PriceModel {
	out := make([]models.PriceModel, len(records))
	for i, r := range records {
		out[i] = ToGORMPrice(r)
	}
	return out
}

func ToDomainRecord(model models.PriceModel) domain.NormalizedRecord {
	return domain.NormalizedRecord{
		Timestamp: model.Timestamp,
		Market:    model.Market,
		Price:     model.Price,
	}
}

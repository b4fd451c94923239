package mappers

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToGORMPrices(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.NormalizedRecord{
		{Timestamp: ts, Market: "BTC-EUR", Price: decimal.RequireFromString("50000.00000000")},
		{Timestamp: ts, Market: "ETH-EUR", Price: decimal.RequireFromString("2300.12345678")},
	}

	models := ToGORMPrices(records)
	require.Len(t, models, 2)
	require.Zero(t, models[0].ID)
	require.Equal(t, "ETH-EUR", models[1].Market)
	require.True(t, models[1].Price.Equal(records[1].Price))

	back := ToDomainRecord(models[0])
	require.Equal(t, records[0].Market, back.Market)
	require.True(t, back.Timestamp.Equal(ts))
	require.True(t, back.Price.Equal(records[0].Price))
}

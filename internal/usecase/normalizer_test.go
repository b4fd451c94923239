package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cycleTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNormalize_EndToEndExample(t *testing.T) {
	quotes := []domain.PriceQuote{
		{Market: "BTC-EUR", Price: "50000.00000000"},
		{Market: "BTC-USDC", Price: "49000.00000000"},
	}

	records, err := Normalize(quotes, decimal.RequireFromString("0.92"), cycleTime)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "BTC-EUR", records[0].Market)
	assert.Equal(t, "50000.00000000", domain.FormatPrice(records[0].Price))
	assert.Equal(t, "BTC-EUR", records[1].Market)
	assert.Equal(t, "45080.00000000", domain.FormatPrice(records[1].Price))
	for _, r := range records {
		assert.Equal(t, cycleTime, r.Timestamp)
	}
}

func TestNormalize_EURPassThrough(t *testing.T) {
	quotes := []domain.PriceQuote{
		{Market: "ETH-EUR", Price: "2345.6789"},
		{Market: "USDC-EUR", Price: "0.92"},
		{Market: "SHIB-EUR", Price: "0.00001234"},
	}

	records, err := Normalize(quotes, decimal.RequireFromString("1.5"), cycleTime)
	require.NoError(t, err)
	require.Len(t, records, len(quotes))
	for i, q := range quotes {
		assert.Equal(t, q.Market, records[i].Market)
		assert.True(t, records[i].Price.Equal(decimal.RequireFromString(q.Price)), q.Market)
	}
}

func TestNormalize_USDCConversion(t *testing.T) {
	rate := decimal.RequireFromString("0.91873412")
	quotes := []domain.PriceQuote{
		{Market: "ETH-USDC", Price: "3012.57"},
		{Market: "PEPE-USDC", Price: "0.0000123456"},
	}

	records, err := Normalize(quotes, rate, cycleTime)
	require.NoError(t, err)
	require.Len(t, records, 2)

	for i, q := range quotes {
		want := decimal.RequireFromString(q.Price).Mul(rate).StringFixed(8)
		assert.Equal(t, want, domain.FormatPrice(records[i].Price))
		assert.LessOrEqual(t, -records[i].Price.Exponent(), int32(8))
	}
	assert.Equal(t, "ETH-EUR", records[0].Market)
	assert.Equal(t, "PEPE-EUR", records[1].Market)
}

func TestNormalize_DropsOtherQuoteCurrencies(t *testing.T) {
	quotes := []domain.PriceQuote{
		{Market: "BTC-USDT", Price: "60000"},
		{Market: "BTC-GBP", Price: "40000"},
		{Market: "BTC-EUR", Price: "50000"},
	}

	n := NormalizeQuotes(quotes, decimal.NewFromInt(1), cycleTime)
	require.Len(t, n.Records, 1)
	assert.Equal(t, "BTC-EUR", n.Records[0].Market)
	assert.Equal(t, 2, n.Dropped)
	assert.Empty(t, n.Malformed)
}

func TestNormalize_SkipsMalformedQuotes(t *testing.T) {
	quotes := []domain.PriceQuote{
		{Market: "BTC-EUR", Price: "not-a-number"},
		{Market: "", Price: "1"},
		{Market: "ETH-USDC", Price: ""},
		{Market: "ETH-EUR", Price: "2000"},
	}

	records, err := Normalize(quotes, decimal.NewFromInt(1), cycleTime)
	require.Len(t, records, 1)
	assert.Equal(t, "ETH-EUR", records[0].Market)

	require.ErrorIs(t, err, domain.ErrMalformedQuote)
	var malformed *domain.MalformedQuoteError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "BTC-EUR", malformed.Market)

	n := NormalizeQuotes(quotes, decimal.NewFromInt(1), cycleTime)
	assert.Len(t, n.Malformed, 3)
}

func TestNormalize_Empty(t *testing.T) {
	records, err := Normalize(nil, decimal.NewFromInt(1), cycleTime)
	require.NoError(t, err)
	require.Empty(t, records)
}

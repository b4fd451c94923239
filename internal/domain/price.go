package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	QuoteCurrencyEUR  = "EUR"
	QuoteCurrencyUSDC = "USDC"

	// PriceScale is the number of fractional digits stored for every price.
	PriceScale = 8
)

// PriceQuote is one {market, price} entry of the exchange ticker list.
type PriceQuote struct {
	Market string `json:"market"`
	Price  string `json:"price"`
}

// NormalizedRecord is an EUR-denominated observation ready to be stored.
type NormalizedRecord struct {
	Timestamp time.Time
	Market    string
	Price     decimal.Decimal
}

// ConversionRate converts USDC-quoted prices into EUR. It is resolved once
// per run and handed to every cycle.
type ConversionRate struct {
	Market     string
	Rate       decimal.Decimal
	ResolvedAt time.Time
}

func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(PriceScale)
}

package domain

//go:generate mockgen -package=mocks -source=exchange_provider.go -destination=mocks/exchange_provider.go

import "context"

// QuoteSource performs a single request for the full ticker price list.
// Retrying is the caller's business.
type QuoteSource interface {
	GetQuotes(ctx context.Context) ([]PriceQuote, error)
	GetName() string
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultRateMarket = "USDC-EUR"

// RateResolver looks up the conversion rate with a single request. There is
// no retry: a run without a rate must not start.
type RateResolver struct {
	source domain.QuoteSource
	market string
	log    *zap.Logger
	now    func() time.Time
}

func NewRateResolver(source domain.QuoteSource, market string, log *zap.Logger) *RateResolver {
	if market == "" {
		market = DefaultRateMarket
	}
	return &RateResolver{
		source: source,
		market: market,
		log:    log,
		now:    time.Now,
	}
}

func (r *RateResolver) Resolve(ctx context.Context) (domain.ConversionRate, error) {
	quotes, err := r.source.GetQuotes(ctx)
	if err != nil {
		r.log.Error("Error occurred while fetching exchange rate", zap.Error(err))
		return domain.ConversionRate{}, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}

	rate, err := FindRate(quotes, r.market)
	if err != nil {
		r.log.Error("Failed to resolve exchange rate", zap.String("market", r.market), zap.Error(err))
		return domain.ConversionRate{}, err
	}

	r.log.Info(fmt.Sprintf("Successfully fetched exchange rate from Bitvavo API: %s.", rate.String()))
	return domain.ConversionRate{
		Market:     r.market,
		Rate:       rate,
		ResolvedAt: r.now().UTC(),
	}, nil
}

// FindRate returns the price of the first quote for market.
func FindRate(quotes []domain.PriceQuote, market string) (decimal.Decimal, error) {
	for _, q := range quotes {
		if q.Market != market {
			continue
		}
		rate, err := decimal.NewFromString(q.Price)
		if err != nil {
			return decimal.Zero, &domain.MalformedQuoteError{Market: q.Market, Price: q.Price, Reason: err}
		}
		if !rate.IsPositive() {
			return decimal.Zero, &domain.MalformedQuoteError{Market: q.Market, Price: q.Price, Reason: fmt.Errorf("rate must be positive")}
		}
		return rate, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrRateNotFound, market)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/metrics"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryPolicy bounds how often a failed fetch is repeated. MaxRetries counts
// retries, so a fetch makes at most MaxRetries+1 attempts.
type RetryPolicy struct {
	MaxRetries int
	Delay      time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 10, Delay: time.Second}
}

func (p RetryPolicy) newBackOff(ctx context.Context) backoff.BackOff {
	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), uint64(retries))
	return backoff.WithContext(b, ctx)
}

type PriceFetcher struct {
	source  domain.QuoteSource
	policy  RetryPolicy
	log     *zap.Logger
	metrics *metrics.CollectorMetrics
}

func NewPriceFetcher(source domain.QuoteSource, policy RetryPolicy, log *zap.Logger, m *metrics.CollectorMetrics) *PriceFetcher {
	return &PriceFetcher{
		source:  source,
		policy:  policy,
		log:     log,
		metrics: m,
	}
}

// Fetch returns the ticker list, retrying failed attempts per the policy.
// Once retries are exhausted the error wraps domain.ErrFetchExhausted.
func (f *PriceFetcher) Fetch(ctx context.Context) ([]domain.PriceQuote, error) {
	var (
		quotes  []domain.PriceQuote
		attempt int
	)

	operation := func() error {
		attempt++
		qs, err := f.source.GetQuotes(ctx)
		if err != nil {
			f.metrics.RecordFetchAttempt(false)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return backoff.Permanent(ctxErr)
			}
			f.log.Warn("Failed to fetch data", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		f.metrics.RecordFetchAttempt(true)
		f.log.Info("Successfully fetched data from Bitvavo API.", zap.Int("attempt", attempt), zap.Int("quotes", len(qs)))
		quotes = qs
		return nil
	}

	if err := backoff.Retry(operation, f.policy.newBackOff(ctx)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		f.log.Error(fmt.Sprintf("Failed to fetch data after %d retries.", f.policy.MaxRetries))
		return nil, fmt.Errorf("%w after %d attempts: %w", domain.ErrFetchExhausted, attempt, err)
	}
	return quotes, nil
}

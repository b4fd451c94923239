package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/shopspring/decimal"
)

// Normalized is the outcome of normalizing one ticker list.
type Normalized struct {
	Records []domain.NormalizedRecord
	// Dropped counts quotes in markets that are neither EUR nor USDC.
	Dropped   int
	Malformed []error
}

// NormalizeQuotes keeps EUR markets as they are and converts USDC markets to
// EUR with rate. The EUR check runs first, so USDC-EUR itself passes through.
func NormalizeQuotes(quotes []domain.PriceQuote, rate decimal.Decimal, ts time.Time) Normalized {
	out := Normalized{Records: make([]domain.NormalizedRecord, 0, len(quotes))}

	for _, q := range quotes {
		if q.Market == "" || q.Price == "" {
			out.Malformed = append(out.Malformed, &domain.MalformedQuoteError{
				Market: q.Market, Price: q.Price, Reason: errors.New("missing market or price"),
			})
			continue
		}

		isEUR := strings.Contains(q.Market, domain.QuoteCurrencyEUR)
		isUSDC := strings.Contains(q.Market, domain.QuoteCurrencyUSDC)
		if !isEUR && !isUSDC {
			out.Dropped++
			continue
		}

		price, err := decimal.NewFromString(q.Price)
		if err != nil {
			out.Malformed = append(out.Malformed, &domain.MalformedQuoteError{Market: q.Market, Price: q.Price, Reason: err})
			continue
		}

		if isEUR {
			out.Records = append(out.Records, domain.NormalizedRecord{Timestamp: ts, Market: q.Market, Price: price})
			continue
		}

		out.Records = append(out.Records, domain.NormalizedRecord{
			Timestamp: ts,
			Market:    strings.ReplaceAll(q.Market, domain.QuoteCurrencyUSDC, domain.QuoteCurrencyEUR),
			Price:     price.Mul(rate).Round(domain.PriceScale),
		})
	}
	return out
}

// Normalize returns the records of every valid quote. A non-nil error joins
// one domain.ErrMalformedQuote per skipped quote. The records are still usable.
func Normalize(quotes []domain.PriceQuote, rate decimal.Decimal, ts time.Time) ([]domain.NormalizedRecord, error) {
	n := NormalizeQuotes(quotes, rate, ts)
	return n.Records, errors.Join(n.Malformed...)
}

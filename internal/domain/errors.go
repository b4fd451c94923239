package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFetchExhausted  = errors.New("fetch retries exhausted")
	ErrRateNotFound    = errors.New("conversion rate market not found")
	ErrRateUnavailable = errors.New("conversion rate unavailable")
	ErrMalformedQuote  = errors.New("malformed quote")
	ErrStore           = errors.New("store failure")
	ErrPublish         = errors.New("publish failure")
)

// MalformedQuoteError describes a quote that could not be normalized.
// It matches ErrMalformedQuote under errors.Is.
type MalformedQuoteError struct {
	Market string
	Price  string
	Reason error
}

func (e *MalformedQuoteError) Error() string {
	return fmt.Sprintf("malformed quote market=%q price=%q: %v", e.Market, e.Price, e.Reason)
}

func (e *MalformedQuoteError) Is(target error) bool {
	return target == ErrMalformedQuote
}

func (e *MalformedQuoteError) Unwrap() error {
	return e.Reason
}

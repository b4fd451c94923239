package exchangeproviders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
)

const (
	DefaultBitvavoTickerURL = "https://api.bitvavo.com/v2/ticker/price"
	userAgent               = "shvark-price-collector/1.0"
)

// StatusError is returned when the exchange answers with a non-200 status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code: %d", e.StatusCode)
}

type BitvavoProvider struct {
	client *http.Client
	url    string
}

func NewBitvavoProvider(url string, timeout time.Duration) *BitvavoProvider {
	if url == "" {
		url = DefaultBitvavoTickerURL
	}
	return &BitvavoProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

// NewBitvavoProviderWithClient is used by tests to point at httptest servers.
func NewBitvavoProviderWithClient(url string, client *http.Client) *BitvavoProvider {
	return &BitvavoProvider{client: client, url: url}
}

func (b *BitvavoProvider) GetName() string {
	return "bitvavo"
}

func (b *BitvavoProvider) GetQuotes(ctx context.Context) ([]domain.PriceQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices from Bitvavo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var quotes []domain.PriceQuote
	if err := json.Unmarshal(body, &quotes); err != nil {
		return nil, fmt.Errorf("failed to parse Bitvavo response: %w", err)
	}
	return quotes, nil
}

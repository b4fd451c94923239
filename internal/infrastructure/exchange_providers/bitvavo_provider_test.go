package exchangeproviders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestBitvavoProvider_GetQuotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v2/ticker/price", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"market":"BTC-EUR","price":"50000.00000000"},
			{"market":"BTC-USDC","price":"49000.00000000","extra":true},
			{"market":"USDC-EUR","price":"0.92"}
		]`))
	}))
	defer server.Close()

	provider := NewBitvavoProviderWithClient(server.URL+"/v2/ticker/price", server.Client())
	quotes, err := provider.GetQuotes(context.Background())

	require.NoError(t, err)
	require.Equal(t, []domain.PriceQuote{
		{Market: "BTC-EUR", Price: "50000.00000000"},
		{Market: "BTC-USDC", Price: "49000.00000000"},
		{Market: "USDC-EUR", Price: "0.92"},
	}, quotes)
}

func TestBitvavoProvider_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewBitvavoProviderWithClient(server.URL, server.Client())
	_, err := provider.GetQuotes(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	require.Equal(t, "status code: 429", err.Error())
}

func TestBitvavoProvider_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"not a list"}`))
	}))
	defer server.Close()

	provider := NewBitvavoProviderWithClient(server.URL, server.Client())
	_, err := provider.GetQuotes(context.Background())
	require.ErrorContains(t, err, "failed to parse Bitvavo response")
}

func TestBitvavoProvider_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	provider := NewBitvavoProvider(url, time.Second)
	_, err := provider.GetQuotes(context.Background())
	require.ErrorContains(t, err, "failed to get prices from Bitvavo")
}

func TestNewBitvavoProvider_DefaultURL(t *testing.T) {
	provider := NewBitvavoProvider("", time.Second)
	require.Equal(t, DefaultBitvavoTickerURL, provider.url)
	require.Equal(t, "bitvavo", provider.GetName())
}

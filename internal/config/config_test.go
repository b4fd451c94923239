package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5432", cfg.PricesDB.Port)
	assert.Equal(t, "disable", cfg.PricesDB.SSLMode)
	assert.Equal(t, "https://api.bitvavo.com/v2/ticker/price", cfg.Exchange.TickerURL)
	assert.Equal(t, "USDC-EUR", cfg.Exchange.RateMarket)
	assert.Equal(t, 10*time.Second, cfg.Collector.PollInterval)
	assert.Equal(t, 10, cfg.Collector.MaxRetries)
	assert.Equal(t, time.Second, cfg.Collector.RetryDelay)
	assert.Equal(t, "script.log", cfg.LogConfig.LogOutput)
	assert.Equal(t, "price-records", cfg.KafkaService.Topic)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "collector")
	t.Setenv("DB_PASS", "s3cr3t")
	t.Setenv("DB", "bitvavo")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("FETCH_MAX_RETRIES", "3")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LOG_STDOUT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.PricesDB.Host)
	assert.Equal(t, "collector", cfg.PricesDB.User)
	assert.Equal(t, "s3cr3t", cfg.PricesDB.Password)
	assert.Equal(t, "bitvavo", cfg.PricesDB.Name)
	assert.Equal(t, 30*time.Second, cfg.Collector.PollInterval)
	assert.Equal(t, 3, cfg.Collector.MaxRetries)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaService.Brokers)
	assert.True(t, cfg.LogConfig.Stdout)
}

func TestDSN(t *testing.T) {
	db := PricesDB{Host: "localhost", Port: "5432", User: "u", Password: "p@ss word", Name: "prices", SSLMode: "disable"}

	u, err := url.Parse(db.DSN())
	require.NoError(t, err)
	assert.Equal(t, "localhost:5432", u.Host)
	assert.Equal(t, "/prices", u.Path)
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss word", pass)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))

	m, err := url.Parse(db.MaintenanceDSN())
	require.NoError(t, err)
	assert.Equal(t, "/postgres", m.Path)
}

package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PriceCollectorConfig struct {
	Env          string `env:"ENV" env-default:"local"`
	PricesDB     PricesDB
	Exchange     Exchange
	Collector    Collector
	LogConfig    LogConfig
	Metrics      Metrics
	KafkaService KafkaService
}

// PricesDB reads the DB_* variables used by existing scraper deployments.
type PricesDB struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`
	Name     string `env:"DB"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

type Exchange struct {
	TickerURL  string        `env:"TICKER_URL" env-default:"https://api.bitvavo.com/v2/ticker/price"`
	RateMarket string        `env:"RATE_MARKET" env-default:"USDC-EUR"`
	Timeout    time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
}

type Collector struct {
	PollInterval time.Duration `env:"POLL_INTERVAL" env-default:"10s"`
	MaxRetries   int           `env:"FETCH_MAX_RETRIES" env-default:"10"`
	RetryDelay   time.Duration `env:"FETCH_RETRY_DELAY" env-default:"1s"`
}

type LogConfig struct {
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
	LogOutput  string `env:"LOG_FILE" env-default:"script.log"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"0"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"0"`
	Stdout     bool   `env:"LOG_STDOUT" env-default:"false"`
}

type Metrics struct {
	Addr string `env:"METRICS_ADDR"`
}

type KafkaService struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"price-records"`
}

// DSN returns the gorm/pgx connection string for the prices database.
func (db PricesDB) DSN() string {
	return db.dsn(db.Name)
}

// MaintenanceDSN points at the "postgres" database, used to create the
// prices database when it does not exist yet.
func (db PricesDB) MaintenanceDSN() string {
	return db.dsn("postgres")
}

func (db PricesDB) dsn(name string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   net.JoinHostPort(db.Host, db.Port),
		Path:   "/" + name,
	}
	q := url.Values{}
	q.Set("sslmode", db.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func Load() (*PriceCollectorConfig, error) {
	var cfg PriceCollectorConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *PriceCollectorConfig {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	return cfg
}

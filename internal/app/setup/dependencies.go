package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-price-collector/internal/config"
	"github.com/LavaJover/shvark-price-collector/internal/domain"
	exchangeproviders "github.com/LavaJover/shvark-price-collector/internal/infrastructure/exchange_providers"
	publisher "github.com/LavaJover/shvark-price-collector/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-price-collector/internal/usecase"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config    *config.PriceCollectorConfig
	Log       *zap.Logger
	DB        *gorm.DB
	Registry  *prometheus.Registry
	Metrics   *metrics.CollectorMetrics
	Publisher *publisher.PriceRecordPublisher
	Collector *usecase.Collector
	RunID     string

	closeLog func() error
}

func InitializeDependencies(cfg *config.PriceCollectorConfig) (*Dependencies, error) {
	log, closeLog, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	deps := &Dependencies{
		Config:   cfg,
		Log:      log,
		RunID:    uuid.NewString(),
		closeLog: closeLog,
	}

	deps.Registry = prometheus.NewRegistry()
	deps.Metrics = metrics.NewCollectorMetrics(deps.Registry)

	db, err := postgres.InitDB(cfg)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("database: %w", err)
	}
	deps.DB = db

	repo := repository.NewDefaultPriceRepository(db, func(ctx context.Context) error {
		return postgres.EnsureDatabase(ctx, cfg.PricesDB)
	})

	source := exchangeproviders.NewBitvavoProvider(cfg.Exchange.TickerURL, cfg.Exchange.Timeout)
	policy := usecase.RetryPolicy{
		MaxRetries: cfg.Collector.MaxRetries,
		Delay:      cfg.Collector.RetryDelay,
	}

	// interface stays untyped nil when kafka is off
	var recordPublisher domain.RecordPublisher
	if len(cfg.KafkaService.Brokers) > 0 {
		deps.Publisher = publisher.NewPriceRecordPublisher(cfg.KafkaService.Brokers, cfg.KafkaService.Topic)
		recordPublisher = deps.Publisher
	}

	collector, err := usecase.NewCollector(usecase.CollectorParams{
		Fetcher:      usecase.NewPriceFetcher(source, policy, log, deps.Metrics),
		Resolver:     usecase.NewRateResolver(source, cfg.Exchange.RateMarket, log),
		Repo:         repo,
		Publisher:    recordPublisher,
		Metrics:      deps.Metrics,
		Log:          log,
		PollInterval: cfg.Collector.PollInterval,
		RunID:        deps.RunID,
	})
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("collector: %w", err)
	}
	deps.Collector = collector

	log.Info("Dependencies initialized",
		zap.String("run_id", deps.RunID),
		zap.String("source", source.GetName()),
		zap.Bool("kafka", deps.Publisher != nil),
		zap.Bool("metrics", cfg.Metrics.Addr != ""),
	)
	return deps, nil
}

// Close releases the kafka writer, the DB pool and the log sink, in that order.
func (d *Dependencies) Close() error {
	var errs []error
	if d.Publisher != nil {
		errs = append(errs, d.Publisher.Close())
	}
	if d.DB != nil {
		errs = append(errs, postgres.Close(d.DB))
	}
	if d.closeLog != nil {
		errs = append(errs, d.closeLog())
	}
	return errors.Join(errs...)
}

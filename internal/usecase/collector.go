package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/metrics"
	nanoid "github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

const DefaultPollInterval = 10 * time.Second

type CollectorParams struct {
	Fetcher  *PriceFetcher
	Resolver *RateResolver
	Repo     domain.RecordRepository
	// Publisher is optional. Leave it nil to skip publishing.
	Publisher    domain.RecordPublisher
	Metrics      *metrics.CollectorMetrics
	Log          *zap.Logger
	PollInterval time.Duration
	RunID        string
	Clock        func() time.Time
}

// Collector runs the polling session: resolve the rate once, then fetch,
// normalize and store prices every PollInterval until the context ends.
type Collector struct {
	fetcher    *PriceFetcher
	resolver   *RateResolver
	repo       domain.RecordRepository
	publisher  domain.RecordPublisher
	metrics    *metrics.CollectorMetrics
	log        *zap.Logger
	interval   time.Duration
	runID      string
	now        func() time.Time
	newCycleID func() string
}

func NewCollector(p CollectorParams) (*Collector, error) {
	idGenerator, err := nanoid.Standard(10)
	if err != nil {
		return nil, err
	}
	if p.PollInterval <= 0 {
		p.PollInterval = DefaultPollInterval
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
	if p.Log == nil {
		p.Log = zap.NewNop()
	}
	return &Collector{
		fetcher:    p.Fetcher,
		resolver:   p.Resolver,
		repo:       p.Repo,
		publisher:  p.Publisher,
		metrics:    p.Metrics,
		log:        p.Log,
		interval:   p.PollInterval,
		runID:      p.RunID,
		now:        p.Clock,
		newCycleID: idGenerator,
	}, nil
}

// Start prepares the schema, resolves the conversion rate and then runs the
// session. Schema errors are logged and do not stop the run. A missing rate
// does: the returned error wraps domain.ErrRateUnavailable.
func (c *Collector) Start(ctx context.Context) error {
	if err := c.repo.EnsureSchema(ctx); err != nil {
		c.log.Error("Error during database setup", zap.Error(err))
	} else {
		c.log.Info("Database setup completed successfully.")
	}

	rate, err := c.resolver.Resolve(ctx)
	if err != nil {
		c.log.Error("Failed to fetch exchange rate. Exiting.")
		return fmt.Errorf("%w: %w", domain.ErrRateUnavailable, err)
	}
	c.metrics.SetConversionRate(rate.Rate.InexactFloat64())

	c.log.Info("Starting data collection session.", zap.String("run_id", c.runID))
	return c.Run(ctx, rate)
}

// Run repeats cycles until ctx is cancelled. Cycle failures never end it.
func (c *Collector) Run(ctx context.Context, rate domain.ConversionRate) error {
	for {
		c.RunCycle(ctx, rate)

		timer := time.NewTimer(c.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			c.log.Info("Data collection session stopped.", zap.String("run_id", c.runID))
			return nil
		case <-timer.C:
		}
	}
}

func (c *Collector) RunCycle(ctx context.Context, rate domain.ConversionRate) (res domain.CycleResult) {
	started := time.Now()
	res = domain.CycleResult{
		ID:        c.newCycleID(),
		Timestamp: c.now().UTC(),
	}
	log := c.log.With(zap.String("cycle", res.ID))
	defer func() {
		c.metrics.RecordCycle(string(res.Outcome), time.Since(started), res.Saved)
	}()

	quotes, err := c.fetcher.Fetch(ctx)
	if err != nil || len(quotes) == 0 {
		res.Outcome = domain.CycleNoData
		res.Err = err
		log.Warn("Failed to fetch data in the current session.")
		return res
	}
	res.Fetched = len(quotes)

	n := NormalizeQuotes(quotes, rate.Rate, res.Timestamp)
	res.Dropped = n.Dropped
	res.Malformed = len(n.Malformed)
	c.metrics.RecordDropped(metrics.DropUnsupportedMarket, n.Dropped)
	c.metrics.RecordDropped(metrics.DropMalformed, len(n.Malformed))
	if len(n.Malformed) > 0 {
		log.Warn("Skipped malformed quotes", zap.Int("count", len(n.Malformed)), zap.Error(errors.Join(n.Malformed...)))
	}

	if err := c.repo.SaveRecords(ctx, n.Records); err != nil {
		res.Outcome = domain.CycleStoreFailed
		res.Err = err
		log.Error("Error while inserting data into database", zap.Error(err))
		return res
	}
	res.Saved = len(n.Records)
	res.Outcome = domain.CycleSaved
	log.Info("Successfully inserted data into the database.", zap.Int("records", res.Saved))

	if c.publisher != nil && res.Saved > 0 {
		if err := c.publisher.PublishRecords(ctx, c.runID, n.Records); err != nil {
			log.Error("Failed to publish price records", zap.Error(err))
		}
	}

	log.Info("[INFO] - Session done: Data saved to database.")
	return res
}

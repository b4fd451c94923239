package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "price_collector"

// Reasons a quote does not make it into a cycle's batch.
const (
	DropUnsupportedMarket = "unsupported_market"
	DropMalformed         = "malformed"
)

// CollectorMetrics holds the collector's Prometheus series. A nil
// *CollectorMetrics is valid and records nothing.
type CollectorMetrics struct {
	FetchAttemptsTotal  *prometheus.CounterVec
	CyclesTotal         *prometheus.CounterVec
	RecordsSavedTotal   prometheus.Counter
	QuotesDroppedTotal  *prometheus.CounterVec
	CycleDuration       prometheus.Histogram
	ConversionRateGauge prometheus.Gauge
}

func NewCollectorMetrics(reg prometheus.Registerer) *CollectorMetrics {
	factory := promauto.With(reg)
	return &CollectorMetrics{
		FetchAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_attempts_total",
				Help:      "Ticker price requests by result",
			},
			[]string{"result"},
		),
		CyclesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cycles_total",
				Help:      "Collection cycles by outcome",
			},
			[]string{"outcome"},
		),
		RecordsSavedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_saved_total",
				Help:      "Normalized price rows committed to the database",
			},
		),
		QuotesDroppedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_dropped_total",
				Help:      "Quotes left out of a batch, by reason",
			},
			[]string{"reason"},
		),
		CycleDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cycle_duration_seconds",
				Help:      "Duration of a fetch, normalize and write cycle",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
		),
		ConversionRateGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "conversion_rate",
				Help:      "USDC to EUR rate resolved at startup",
			},
		),
	}
}

func (m *CollectorMetrics) RecordFetchAttempt(success bool) {
	if m == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.FetchAttemptsTotal.WithLabelValues(result).Inc()
}

func (m *CollectorMetrics) RecordCycle(outcome string, duration time.Duration, saved int) {
	if m == nil {
		return
	}
	m.CyclesTotal.WithLabelValues(outcome).Inc()
	m.CycleDuration.Observe(duration.Seconds())
	if saved > 0 {
		m.RecordsSavedTotal.Add(float64(saved))
	}
}

func (m *CollectorMetrics) RecordDropped(reason string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.QuotesDroppedTotal.WithLabelValues(reason).Add(float64(n))
}

func (m *CollectorMetrics) SetConversionRate(rate float64) {
	if m == nil {
		return
	}
	m.ConversionRateGauge.Set(rate)
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("Metrics server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

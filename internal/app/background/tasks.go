package background

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-price-collector/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// BackgroundTasks runs the side services that live next to the collection
// session. Only the metrics endpoint exists today.
type BackgroundTasks struct {
	MetricsAddr string
	Gatherer    prometheus.Gatherer
	Log         *zap.Logger

	wg sync.WaitGroup
}

func NewBackgroundTasks(metricsAddr string, gatherer prometheus.Gatherer, log *zap.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		MetricsAddr: metricsAddr,
		Gatherer:    gatherer,
		Log:         log,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	if bt.MetricsAddr != "" {
		bt.wg.Add(1)
		go bt.startMetricsServer(ctx)
	}
}

// Wait blocks until every started task has returned.
func (bt *BackgroundTasks) Wait() {
	bt.wg.Wait()
}

func (bt *BackgroundTasks) startMetricsServer(ctx context.Context) {
	defer bt.wg.Done()
	if err := metrics.Serve(ctx, bt.MetricsAddr, bt.Gatherer, bt.Log); err != nil {
		bt.Log.Error("Metrics server failed", zap.Error(err))
	}
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCollectorMetrics(reg)

	m.RecordFetchAttempt(false)
	m.RecordFetchAttempt(false)
	m.RecordFetchAttempt(true)
	m.RecordCycle("saved", 120*time.Millisecond, 4)
	m.RecordCycle("no_data", time.Second, 0)
	m.RecordDropped(DropUnsupportedMarket, 3)
	m.RecordDropped(DropMalformed, 0)
	m.SetConversionRate(0.92)

	require.Equal(t, 2.0, testutil.ToFloat64(m.FetchAttemptsTotal.WithLabelValues("failure")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.FetchAttemptsTotal.WithLabelValues("success")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.CyclesTotal.WithLabelValues("saved")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.CyclesTotal.WithLabelValues("no_data")))
	require.Equal(t, 4.0, testutil.ToFloat64(m.RecordsSavedTotal))
	require.Equal(t, 3.0, testutil.ToFloat64(m.QuotesDroppedTotal.WithLabelValues(DropUnsupportedMarket)))
	require.Equal(t, 0.92, testutil.ToFloat64(m.ConversionRateGauge))
	require.Equal(t, 1, testutil.CollectAndCount(m.QuotesDroppedTotal))
}

func TestNilCollectorMetricsIsNoop(t *testing.T) {
	var m *CollectorMetrics
	require.NotPanics(t, func() {
		m.RecordFetchAttempt(true)
		m.RecordCycle("saved", time.Second, 1)
		m.RecordDropped(DropMalformed, 2)
		m.SetConversionRate(1)
	})
}

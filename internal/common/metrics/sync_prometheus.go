package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type SyncPrometheusMetrics struct {
	runsTotal       *prometheus.CounterVec
	recordsUpserted *prometheus.CounterVec
	recordsSkipped  *prometheus.CounterVec
	runDurationHist *prometheus.HistogramVec
}

func newSyncPrometheusMetrics(reg prometheus.Registerer) *SyncPrometheusMetrics {
	mtc := &SyncPrometheusMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregation_sync_runs_total",
				Help: "Number of sync runs by provider, kind, and terminal status",
			},
			[]string{"provider", "kind", "status"},
		),
		recordsUpserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregation_sync_records_upserted_total",
				Help: "Number of records upserted by sync runs",
			},
			[]string{"provider", "kind"},
		),
		recordsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregation_sync_records_skipped_total",
				Help: "Number of records skipped by sync runs (per-record mapping failures)",
			},
			[]string{"provider", "kind"},
		),
		runDurationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aggregation_sync_run_duration_seconds",
				Help:    "Duration of one provider sync run in seconds.",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
			},
			[]string{"provider", "kind"},
		),
	}

	reg.MustRegister(mtc.runsTotal, mtc.recordsUpserted, mtc.recordsSkipped, mtc.runDurationHist)

	return mtc
}

func (m *SyncPrometheusMetrics) Record(provider, kind, status string, upserted, skipped int, duration time.Duration) {
	if m == nil {
		return
	}

	m.runsTotal.WithLabelValues(provider, kind, status).Inc()
	m.recordsUpserted.WithLabelValues(provider, kind).Add(float64(upserted))
	m.recordsSkipped.WithLabelValues(provider, kind).Add(float64(skipped))
	m.runDurationHist.WithLabelValues(provider, kind).Observe(duration.Seconds())
}

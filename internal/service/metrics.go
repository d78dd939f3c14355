package service

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce           sync.Once
	mutationsTotal        *prometheus.CounterVec
	historyEntries        prometheus.Gauge
	exportDurationSeconds *prometheus.HistogramVec
	exportCacheTotal      *prometheus.CounterVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing_builder",
			Subsystem: "editor",
			Name:      "mutations_total",
			Help:      "Total document mutations applied by the editor",
		}, []string{"op"})

		historyEntries = promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "landing_builder",
			Subsystem: "editor",
			Name:      "history_entries",
			Help:      "Snapshots currently retained by the undo history",
		})

		exportDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "landing_builder",
			Subsystem: "export",
			Name:      "duration_seconds",
			Help:      "Duration of document exports",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"})

		exportCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing_builder",
			Subsystem: "export",
			Name:      "cache_total",
			Help:      "Static export cache lookups",
		}, []string{"result"})
	})
}

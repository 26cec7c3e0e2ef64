package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReadingsIngested counts stored readings by sensor (temperature|activity) and transport (http|grpc).
	ReadingsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cattle_readings_ingested_total",
			Help: "Total number of sensor readings stored",
		},
		[]string{"sensor", "transport"},
	)

	// ReadingsRejected counts ingestion attempts that did not produce a row, by reason.
	ReadingsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cattle_readings_rejected_total",
			Help: "Total number of rejected sensor readings",
		},
		[]string{"sensor", "reason"},
	)

	NotificationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cattle_notifications_created_total",
			Help: "Total number of notifications raised",
		},
		[]string{"type", "severity"},
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cattle_auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cattle_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	OfflineSweepRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cattle_offline_sweep_runs_total",
			Help: "Offline sensor sweeps by result (ok|error)",
		},
		[]string{"result"},
	)
)

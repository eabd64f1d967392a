package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssistantQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Total number of assistant queries by classified intent",
		},
		[]string{"intent"},
	)

	AssistantFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_failures_total",
			Help: "Total number of failed assistant queries by reason",
		},
		[]string{"reason"},
	)

	AssistantDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_request_duration_seconds",
			Help: "End-to-end duration of assistant queries in seconds",
		},
		[]string{"intent"},
	)

	SnapshotFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "aggregate_snapshot_fetch_duration_seconds",
			Help: "Duration of aggregate snapshot fetches in seconds",
		},
	)
)

// Package metrics defines the query service's Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eros1981/fanbase-inside-out-top5/pkg/monitoring"
)

// Metrics holds all Prometheus metrics for the query service
type Metrics struct {
	LeaderboardQueries *prometheus.CounterVec   // labels: category, status
	QueryDuration      *prometheus.HistogramVec // labels: category
	WarehouseQueries   *prometheus.CounterVec   // labels: template, status
}

// NewMetrics registers the query service metrics on the shared collector.
func NewMetrics(collector *monitoring.MetricsCollector) *Metrics {
	return &Metrics{
		LeaderboardQueries: collector.NewCounter(
			"leaderboard_queries_total",
			"Total number of leaderboard requests by category and status",
			[]string{"category", "status"},
		),
		QueryDuration: collector.NewHistogram(
			"leaderboard_query_duration_seconds",
			"Warehouse query duration in seconds by category",
			[]string{"category"},
			nil,
		),
		WarehouseQueries: collector.NewCounter(
			"warehouse_queries_total",
			"Total number of warehouse queries by template and status",
			[]string{"template", "status"},
		),
	}
}

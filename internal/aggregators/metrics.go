package aggregators

import (
	"license-usage-aggregator/internal/shared/metrics"
)

const (
	kindStandalone = "standalone"
	kindBundle     = "bundle"
)

var (
	// metricDaysAggregatedTotal counts aggregated days by outcome.
	metricDaysAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "days_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricDailyRowsTotal counts produced daily high-water marks. kind is "standalone" for
	// products reported on their own and "bundle" for blended cloudpak rows.
	metricDailyRowsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "daily_rows_total",
		},
		[]string{"kind"},
	)

	metricDayDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "day_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)

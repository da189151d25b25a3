package stores

import (
	"license-usage-aggregator/internal/shared/metrics"
)

var (
	metricReportFilesWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "files_written_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportRowsWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "rows_written_total",
		},
		[]string{},
	)
)

package ingestors

import (
	"license-usage-aggregator/internal/shared/metrics"
)

var (
	metricSamplesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "samples_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricTaskFilesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "task_files_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)

package ingestors

import (
	"github.com/chanderlud/dstat-frontend/internal/shared/metrics"
)

var (
	metricReportIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "report_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)

package http

import (
	"github.com/chanderlud/dstat-frontend/internal/shared/metrics"
)

var (
	// metricHTTPRequestsTotal counts requests by route pattern, so /?server=edge1 and /?server=edge2 share a series.
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)
)

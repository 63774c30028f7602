package queries

import (
	"github.com/chanderlud/dstat-frontend/internal/shared/metrics"
)

const (
	queryRate        = "rate"
	queryDashboard   = "dashboard"
	queryFleetStatus = "fleet_status"
	queryHistory     = "history"
)

// metricQueryTotal counts answered queries by kind and outcome.
// A dashboard lookup for an unknown server is counted with error_code="QRY_1000".
var (
	metricQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "total",
		},
		[]string{"query", metrics.FieldErrorCode},
	)
)

package streams

import (
	"github.com/chanderlud/dstat-frontend/internal/shared/metrics"
)

var (
	streamReport = "report"

	metricReportProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "report_published_total",
		},
		[]string{"stream_id"},
	)

	metricReportDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "report_dropped_total",
		},
		[]string{"stream_id"},
	)

	metricReportConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "report_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	// metricServerLastReportTimestamp is the unix time of the newest report seen per server.
	// Alerting on time() - this gauge mirrors the online/offline judgment of the status page.
	metricServerLastReportTimestamp = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "server_last_report_timestamp_seconds",
		},
		[]string{"server"},
	)

	metricServerRPS = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "server_rps",
		},
		[]string{"server"},
	)
)

package streams

import (
	"context"

	"github.com/chanderlud/dstat-frontend/internal/events"
	"github.com/chanderlud/dstat-frontend/internal/models"
)

// ReportProducer publishes stored samples to the report stream, partitioned by server name.
//
// Routing every report of a server to the same partition gives the consumer a single writer per
// server, so its gauges never move backwards because two workers raced on the same label.
//
// Publishing never blocks a request: when the partition is full the event is dropped and counted.
//
//go:generate mockgen -source=report_producer.go -destination=./mocks/report_producer_mock.go -package=mocks
type ReportProducer interface {
	Produce(ctx context.Context, sample *models.Sample) error
}

type reportProducer struct {
	queue *PartitionedQueue[events.ReportEvent]
}

func NewReportProducer(queue *PartitionedQueue[events.ReportEvent]) ReportProducer {
	return &reportProducer{
		queue: queue,
	}
}

func (producer *reportProducer) Produce(ctx context.Context, sample *models.Sample) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	event := events.ReportEvent{
		ServerName: sample.ServerName,
		Time:       sample.Time,
		RPS:        sample.RPS,
	}
	if !producer.queue.TryPublish(event.ServerName, event) {
		metricReportDroppedTotal.WithLabelValues(streamReport).Inc()
		return ErrStreamFull
	}
	metricReportProducedTotal.WithLabelValues(streamReport).Inc()
	return nil
}

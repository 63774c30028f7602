package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/chanderlud/dstat-frontend/internal/events"
	"github.com/chanderlud/dstat-frontend/internal/shared/loggers"
	"github.com/chanderlud/dstat-frontend/internal/shared/metrics"
	"github.com/chanderlud/dstat-frontend/internal/shared/ulid"
)

type ReportConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type reportConsumer struct {
	queue *PartitionedQueue[events.ReportEvent]

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewReportConsumer(queue *PartitionedQueue[events.ReportEvent], logger loggers.Logger) ReportConsumer {
	return &reportConsumer{
		queue:  queue,
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *reportConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *reportConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *reportConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.ReportEvent) {
	workerLogger := consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Logger()

	// Newest report time per server in this partition; servers never change partition.
	lastSeen := make(map[string]int64)

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(workerLogger, lastSeen, event)
		}
	}
}

func (consumer *reportConsumer) handle(workerLogger loggers.Logger, lastSeen map[string]int64, event events.ReportEvent) {
	defer func() {
		if r := recover(); r != nil {
			workerLogger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Str(loggers.FieldServerName, event.ServerName).
				Msgf("consumer panic recovered: %v", r)
			metricReportConsumedTotal.WithLabelValues(streamReport, codeInternalConsumerPanic).Inc()
		}
	}()

	eventLogger := workerLogger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldServerName, event.ServerName).
		Logger()

	if prev, ok := lastSeen[event.ServerName]; ok && event.Time < prev {
		eventLogger.Debug().Msgf("ignoring out-of-order report at %d, newest is %d", event.Time, prev)
		metricReportConsumedTotal.WithLabelValues(streamReport, metrics.ValueNoError).Inc()
		return
	}
	lastSeen[event.ServerName] = event.Time

	metricServerLastReportTimestamp.WithLabelValues(event.ServerName).Set(float64(event.Time))
	metricServerRPS.WithLabelValues(event.ServerName).Set(float64(event.RPS))
	metricReportConsumedTotal.WithLabelValues(streamReport, metrics.ValueNoError).Inc()
}

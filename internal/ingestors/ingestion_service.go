package ingestors

import (
	"context"
	"errors"
	"time"

	"github.com/chanderlud/dstat-frontend/internal/models"
	"github.com/chanderlud/dstat-frontend/internal/shared/loggers"
	"github.com/chanderlud/dstat-frontend/internal/shared/metrics"
	"github.com/chanderlud/dstat-frontend/internal/shared/validators"
	"github.com/chanderlud/dstat-frontend/internal/stores"
	"github.com/chanderlud/dstat-frontend/internal/streams"
)

// ReportRequest is the body of POST /api/v1/reports.
type ReportRequest struct {
	Name   string `json:"name" validate:"servername,max=255"`
	RPS    int64  `json:"rps" validate:"gte=0"`
	Secret string `json:"secret"`
}

// Clock returns the current time in unix seconds.
type Clock func() int64

// SystemClock is the wall clock at second granularity.
func SystemClock() int64 {
	return time.Now().Unix()
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// SubmitReport checks the shared secret, timestamps the report and appends it to the log.
	// Exactly one row is written on success and none on any failure.
	SubmitReport(ctx context.Context, req *ReportRequest) error
}

type ingestionService struct {
	sharedSecret   string
	clock          Clock
	validate       *validators.Validate
	logStore       stores.LogStore
	reportProducer streams.ReportProducer
}

func NewIngestionService(sharedSecret string, clock Clock, logStore stores.LogStore, reportProducer streams.ReportProducer) IngestionService {
	if clock == nil {
		clock = SystemClock
	}
	return &ingestionService{
		sharedSecret:   sharedSecret,
		clock:          clock,
		validate:       validators.New(),
		logStore:       logStore,
		reportProducer: reportProducer,
	}
}

func (s *ingestionService) SubmitReport(ctx context.Context, req *ReportRequest) error {
	logger := loggers.Ctx(ctx)

	if req == nil {
		svcErr := errValidationFailed("empty report", nil)
		metricReportIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	// The secret is checked before anything else so an unauthenticated caller learns nothing about validation.
	if req.Secret != s.sharedSecret {
		svcErr := errUnauthorized()
		metricReportIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		logger.Warn().Str(loggers.FieldServerName, req.Name).Msg("rejected report with invalid shared secret")
		return svcErr
	}

	if err := s.validate.Struct(req); err != nil {
		svcErr := errValidationFailed(formatValidationError(err), err)
		metricReportIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	sample := &models.Sample{
		Time:       s.clock(),
		ServerName: req.Name,
		RPS:        req.RPS,
	}
	logger.Debug().Msgf("appending report for server %s: rps=%d time=%d", sample.ServerName, sample.RPS, sample.Time)

	if err := s.logStore.Append(ctx, sample); err != nil {
		var svcErr = errInternalLogStoreFailed(err)
		if errors.Is(err, stores.ErrSampleConflict) {
			svcErr = errReportAlreadyRecorded(err)
		}
		metricReportIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	// The row is committed; the stream only feeds gauges, so a full partition is not the caller's problem.
	if err := s.reportProducer.Produce(ctx, sample); err != nil {
		logger.Warn().Err(err).Str(loggers.FieldServerName, sample.ServerName).Msg("failed to publish report event")
	}

	metricReportIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

func formatValidationError(err error) string {
	var validationErrors validators.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid report"
	}
	switch validationErrors[0].Field() {
	case "Name":
		return "name must be a non-empty server name of at most 255 characters"
	case "RPS":
		return "rps must not be negative"
	default:
		return "invalid report"
	}
}

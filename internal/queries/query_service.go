package queries

import (
	"context"
	"errors"
	"time"

	"github.com/chanderlud/dstat-frontend/internal/freshness"
	"github.com/chanderlud/dstat-frontend/internal/models"
	"github.com/chanderlud/dstat-frontend/internal/shared/loggers"
	"github.com/chanderlud/dstat-frontend/internal/shared/metrics"
	"github.com/chanderlud/dstat-frontend/internal/stores"
)

// DefaultWindowLimit is the number of samples RecentWindow summarizes when no limit is configured.
const DefaultWindowLimit = 60

// Clock returns the current time in unix seconds.
type Clock func() int64

func systemClock() int64 {
	return time.Now().Unix()
}

// QueryService answers read questions about the fleet. Every call reads the stores afresh;
// nothing is cached between calls.
//
//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	// RateFor returns the current rate of serverName, or 0 when it is stale or has never reported.
	RateFor(ctx context.Context, serverName string) (int64, error)
	// DashboardTarget resolves the dashboard for requested, or for the first catalog entry when requested is empty.
	DashboardTarget(ctx context.Context, requested string) (*models.DashboardTarget, error)
	// FleetStatus returns one status per catalog entry, in catalog order.
	FleetStatus(ctx context.Context) ([]*models.ServerStatus, error)
	// RecentWindow summarizes the most recent samples of serverName.
	RecentWindow(ctx context.Context, serverName string) (*models.WindowSummary, error)
}

type queryService struct {
	catalog     stores.Catalog
	logStore    stores.LogStore
	evaluator   *freshness.Evaluator
	clock       Clock
	windowLimit int
}

func NewQueryService(catalog stores.Catalog, logStore stores.LogStore, evaluator *freshness.Evaluator, clock Clock, windowLimit int) QueryService {
	if clock == nil {
		clock = systemClock
	}
	if evaluator == nil {
		evaluator = freshness.NewEvaluator(freshness.DefaultStaleThreshold)
	}
	if windowLimit <= 0 {
		windowLimit = DefaultWindowLimit
	}
	return &queryService{
		catalog:     catalog,
		logStore:    logStore,
		evaluator:   evaluator,
		clock:       clock,
		windowLimit: windowLimit,
	}
}

func (s *queryService) RateFor(ctx context.Context, serverName string) (int64, error) {
	samples, err := s.logStore.RecentFor(ctx, serverName, 1)
	if err != nil {
		svcErr := errInternalLogStoreFailed(err)
		metricQueryTotal.WithLabelValues(queryRate, svcErr.Code).Inc()
		return 0, svcErr
	}

	rate := s.evaluator.CurrentRate(newest(samples), s.clock())
	metricQueryTotal.WithLabelValues(queryRate, metrics.ValueNoError).Inc()
	return rate, nil
}

func (s *queryService) DashboardTarget(ctx context.Context, requested string) (*models.DashboardTarget, error) {
	ref, err := s.resolveServer(ctx, requested)
	if err != nil {
		svcErr := errInternalCatalogFailed(err)
		if errors.Is(err, stores.ErrServerNotFound) {
			svcErr = errServerNotFound(requested, err)
		}
		metricQueryTotal.WithLabelValues(queryDashboard, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricQueryTotal.WithLabelValues(queryDashboard, metrics.ValueNoError).Inc()
	return &models.DashboardTarget{ID: ref.ServerName, URL: ref.URL}, nil
}

func (s *queryService) resolveServer(ctx context.Context, requested string) (*models.ServerRef, error) {
	if requested != "" {
		return s.catalog.FindByName(ctx, requested)
	}

	refs, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, stores.ErrServerNotFound
	}
	return refs[0], nil
}

func (s *queryService) FleetStatus(ctx context.Context) ([]*models.ServerStatus, error) {
	logger := loggers.Ctx(ctx)

	refs, err := s.catalog.List(ctx)
	if err != nil {
		svcErr := errInternalCatalogFailed(err)
		metricQueryTotal.WithLabelValues(queryFleetStatus, svcErr.Code).Inc()
		return nil, svcErr
	}

	latest, err := s.logStore.AllLatestPerServer(ctx)
	if err != nil {
		svcErr := errInternalLogStoreFailed(err)
		metricQueryTotal.WithLabelValues(queryFleetStatus, svcErr.Code).Inc()
		return nil, svcErr
	}

	// One clock reading for the whole page so every row is judged against the same instant.
	now := s.clock()
	statuses := make([]*models.ServerStatus, 0, len(refs))
	online := 0
	for _, ref := range refs {
		status := &models.ServerStatus{
			ServerName: ref.ServerName,
			Online:     s.evaluator.IsOnline(latest[ref.ServerName], now),
		}
		if status.Online {
			online++
		}
		statuses = append(statuses, status)
	}

	logger.Debug().Msgf("fleet status computed: %d of %d servers online", online, len(statuses))
	metricQueryTotal.WithLabelValues(queryFleetStatus, metrics.ValueNoError).Inc()
	return statuses, nil
}

func (s *queryService) RecentWindow(ctx context.Context, serverName string) (*models.WindowSummary, error) {
	samples, err := s.logStore.RecentFor(ctx, serverName, s.windowLimit)
	if err != nil {
		svcErr := errInternalLogStoreFailed(err)
		metricQueryTotal.WithLabelValues(queryHistory, svcErr.Code).Inc()
		return nil, svcErr
	}

	now := s.clock()
	summary := models.NewWindowSummary(serverName, samples)
	summary.CurrentRPS = s.evaluator.CurrentRate(summary.Latest(), now)
	summary.Online = s.evaluator.IsOnline(summary.Latest(), now)

	metricQueryTotal.WithLabelValues(queryHistory, metrics.ValueNoError).Inc()
	return summary, nil
}

func newest(samples []*models.Sample) *models.Sample {
	if len(samples) == 0 {
		return nil
	}
	return samples[0]
}

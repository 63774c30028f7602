package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chanderlud/dstat-frontend/internal/ingestors"
	ingestormocks "github.com/chanderlud/dstat-frontend/internal/ingestors/mocks"
	"github.com/chanderlud/dstat-frontend/internal/models"
	querymocks "github.com/chanderlud/dstat-frontend/internal/queries/mocks"
	"github.com/chanderlud/dstat-frontend/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewReportHandler(ingestionService)

	ingestionService.EXPECT().
		SubmitReport(gomock.Any(), &ingestors.ReportRequest{Name: "edge1", RPS: 500, Secret: "correct-secret"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(`{"name":"edge1","rps":500,"secret":"correct-secret"}`))
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestReportHandler_MalformedBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "name=edge1"},
		{"wrong type", `{"name":"edge1","rps":"fast","secret":"s"}`},
		{"empty body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			handler := NewReportHandler(ingestormocks.NewMockIngestionService(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(tt.body))
			err := handler.Handle(httptest.NewRecorder(), req)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, codeMalformedBody, svcErr.Code)
			assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
		})
	}
}

func TestReportHandler_PassesServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewReportHandler(ingestionService)

	unauthorized := svcerrors.NewUnauthorizedError("ING_1001", "invalid shared secret", nil)
	ingestionService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Return(unauthorized)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(`{"name":"edge1","rps":500,"secret":"nope"}`))
	err := handler.Handle(httptest.NewRecorder(), req)

	assert.Equal(t, unauthorized, err)
}

func TestDataHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rate int64
		want string
	}{
		{"fresh", 500, "500"},
		{"stale or idle", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queryService := querymocks.NewMockQueryService(ctrl)
			queryService.EXPECT().RateFor(gomock.Any(), "edge1").Return(tt.rate, nil)

			rr := httptest.NewRecorder()
			err := NewDataHandler(queryService).Handle(rr, httptest.NewRequest(http.MethodGet, "/api/v1/data?name=edge1", nil))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, rr.Body.String())
		})
	}
}

func TestDataHandler_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queryService := querymocks.NewMockQueryService(ctrl)
	queryService.EXPECT().RateFor(gomock.Any(), "edge1").Return(int64(0), svcerrors.NewInternalError("QRY_9000", assert.AnError))

	rr := httptest.NewRecorder()
	err := NewDataHandler(queryService).Handle(rr, httptest.NewRequest(http.MethodGet, "/api/v1/data?name=edge1", nil))

	require.Error(t, err)
	assert.Empty(t, rr.Body.String())
}

func TestDashboardHandler(t *testing.T) {
	t.Parallel()

	notFound := svcerrors.NewNotFoundError("QRY_1000", "not found", nil)

	t.Run("default server", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queryService := querymocks.NewMockQueryService(ctrl)
		queryService.EXPECT().DashboardTarget(gomock.Any(), "").
			Return(&models.DashboardTarget{ID: "edge1", URL: "https://edge1.example.com"}, nil)

		rr := httptest.NewRecorder()
		require.NoError(t, NewDashboardHandler(queryService).Handle(rr, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":"edge1","url":"https://edge1.example.com"}`, rr.Body.String())
	})

	t.Run("unknown server redirects home", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queryService := querymocks.NewMockQueryService(ctrl)
		queryService.EXPECT().DashboardTarget(gomock.Any(), "missing").Return(nil, notFound)

		rr := httptest.NewRecorder()
		require.NoError(t, NewDashboardHandler(queryService).Handle(rr, httptest.NewRequest(http.MethodGet, "/?server=missing", nil)))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("empty catalog is not redirected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queryService := querymocks.NewMockQueryService(ctrl)
		queryService.EXPECT().DashboardTarget(gomock.Any(), "").Return(nil, notFound)

		err := NewDashboardHandler(queryService).Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, notFound, err)
	})
}

func TestServerStatusHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queryService := querymocks.NewMockQueryService(ctrl)
	queryService.EXPECT().FleetStatus(gomock.Any()).Return([]*models.ServerStatus{
		{ServerName: "edge1", Online: true},
		{ServerName: "edge2", Online: false},
	}, nil)

	rr := httptest.NewRecorder()
	require.NoError(t, NewServerStatusHandler(queryService).Handle(rr, httptest.NewRequest(http.MethodGet, "/server-status", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"statuses":[{"serverName":"edge1","online":true},{"serverName":"edge2","online":false}]}`, rr.Body.String())
}

func TestServerStatusHandler_EmptyFleet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queryService := querymocks.NewMockQueryService(ctrl)
	queryService.EXPECT().FleetStatus(gomock.Any()).Return(nil, nil)

	rr := httptest.NewRecorder()
	require.NoError(t, NewServerStatusHandler(queryService).Handle(rr, httptest.NewRequest(http.MethodGet, "/server-status", nil)))

	assert.JSONEq(t, `{"statuses":[]}`, rr.Body.String())
}

func TestHistoryHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queryService := querymocks.NewMockQueryService(ctrl)
	summary := models.NewWindowSummary("edge1", []*models.Sample{{Time: 1000, ServerName: "edge1", RPS: 500}})
	summary.Online = true
	summary.CurrentRPS = 500
	queryService.EXPECT().RecentWindow(gomock.Any(), "edge1").Return(summary, nil)

	rr := httptest.NewRecorder()
	require.NoError(t, NewHistoryHandler(queryService).Handle(rr, httptest.NewRequest(http.MethodGet, "/api/v1/history?name=edge1", nil)))

	var got models.WindowSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Count)
	assert.True(t, got.Online)
	assert.Equal(t, int64(500), got.CurrentRPS)
}

func TestHistoryHandler_MissingName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	handler := NewHistoryHandler(querymocks.NewMockQueryService(ctrl))

	err := handler.Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeMissingParameter, svcErr.Code)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	healthy := NewHealthHandler(pingerFunc(func(ctx context.Context) error { return nil }))
	require.NoError(t, healthy.Handle(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	unhealthy := NewHealthHandler(pingerFunc(func(ctx context.Context) error { return assert.AnError }))
	err := unhealthy.Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalUnavailable, svcErr.Code)
	assert.ErrorIs(t, err, assert.AnError)
}

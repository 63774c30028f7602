package http

import (
	"net/http"

	"github.com/chanderlud/dstat-frontend/internal/ingestors"
	"github.com/chanderlud/dstat-frontend/internal/queries"
	"github.com/chanderlud/dstat-frontend/internal/shared/loggers"
	"github.com/chanderlud/dstat-frontend/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, queryService queries.QueryService, pinger Pinger, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	reportHandler := NewReportHandler(ingestionService)
	dataHandler := NewDataHandler(queryService)
	historyHandler := NewHistoryHandler(queryService)
	dashboardHandler := NewDashboardHandler(queryService)
	serverStatusHandler := NewServerStatusHandler(queryService)
	healthHandler := NewHealthHandler(pinger)

	// Routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/reports", errorHandlingAdapter(reportHandler))
		r.Get("/data", errorHandlingAdapter(dataHandler))
		r.Get("/history", errorHandlingAdapter(historyHandler))
	})
	router.Get("/", errorHandlingAdapter(dashboardHandler))
	router.Get("/server-status", errorHandlingAdapter(serverStatusHandler))
	router.Get("/healthz", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

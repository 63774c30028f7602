package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/chanderlud/dstat-frontend/internal/events"
	"github.com/chanderlud/dstat-frontend/internal/freshness"
	internalhttp "github.com/chanderlud/dstat-frontend/internal/http"
	"github.com/chanderlud/dstat-frontend/internal/ingestors"
	"github.com/chanderlud/dstat-frontend/internal/queries"
	"github.com/chanderlud/dstat-frontend/internal/shared/configs"
	"github.com/chanderlud/dstat-frontend/internal/shared/databases"
	"github.com/chanderlud/dstat-frontend/internal/shared/loggers"
	"github.com/chanderlud/dstat-frontend/internal/stores"
	"github.com/chanderlud/dstat-frontend/internal/streams"
)

const startupTimeout = 30 * time.Second

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *sql.DB

	reportConsumer   streams.ReportConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "dstat-frontend").
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// Initialize database
	db, err := databases.Open(ctx, config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := databases.ApplySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	// Initialize stores
	logStore := stores.NewLogStore(db)
	catalog := stores.NewCatalog(db)
	if err := seedCatalog(ctx, appLogger, catalog, config.Catalog.SeedFile); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Initialize report stream
	reportQueue := streams.NewPartitionedQueue[events.ReportEvent](config.Stream.Partitions, config.Stream.Buffer)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	reportConsumer := streams.NewReportConsumer(reportQueue, consumerLogger)
	reportProducer := streams.NewReportProducer(reportQueue)

	// Initialize services
	ingestionService := ingestors.NewIngestionService(config.Auth.SharedSecret, ingestors.SystemClock, logStore, reportProducer)
	evaluator := freshness.NewEvaluator(config.Freshness.StaleThreshold)
	queryService := queries.NewQueryService(catalog, logStore, evaluator, nil, config.Query.WindowLimit)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, queryService, db, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		db:             db,
		reportConsumer: reportConsumer,
	}, nil
}

func seedCatalog(ctx context.Context, logger loggers.Logger, catalog stores.CatalogSeeder, seedFile string) error {
	if seedFile == "" {
		return nil
	}
	refs, err := stores.LoadCatalogSeed(seedFile)
	if err != nil {
		return fmt.Errorf("failed to load catalog seed: %w", err)
	}
	inserted, err := catalog.Seed(ctx, refs)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	logger.Info().Msgf("catalog seeded from %s: %d of %d servers inserted", seedFile, inserted, len(refs))
	return nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting dstat-frontend on port %d (log_level=%s, database_driver=%s, stale_threshold=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Database.Driver,
			app.config.Freshness.StaleThreshold)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.reportConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server so no new reports are produced
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers and wait for them
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.reportConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	// 3) Release the connection pool
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	app.appLogger.Info().Msg("Database closed")

	return nil
}

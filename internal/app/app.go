package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/neo-insights/internal/config"
	httpcontroller "github.com/vadim/neo-insights/internal/controller/http"
	"github.com/vadim/neo-insights/internal/database"
	"github.com/vadim/neo-insights/internal/domain/insight/dao"
	"github.com/vadim/neo-insights/internal/domain/insight/policy"
	"github.com/vadim/neo-insights/internal/domain/insight/scheduler"
	"github.com/vadim/neo-insights/internal/domain/insight/service"
	"github.com/vadim/neo-insights/internal/httpx/response"
	"github.com/vadim/neo-insights/internal/httpx/upstream/exports"
	"github.com/vadim/neo-insights/internal/retry"
	"github.com/vadim/neo-insights/internal/storage"
)

// App is the main application container
type App struct {
	cfg        config.Config
	httpServer *http.Server
	router     *chi.Mux
	logger     *slog.Logger

	// Infrastructure, only set for the source kind that needs it
	pg *pgxpool.Pool
	s3 *storage.S3Storage

	insightService *service.Service
	insightPolicy  *policy.Policy

	// Scheduler for reloading the dataset
	scheduler *scheduler.Scheduler
}

// NewApp creates and initializes the application
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	// Initialize router with middleware
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(30 * time.Second))

	app := &App{
		cfg:    cfg,
		router: r,
		logger: logger,
	}

	// Initialize infrastructure
	if err := app.initInfrastructure(ctx); err != nil {
		return nil, fmt.Errorf("initializing infrastructure: %w", err)
	}

	// Initialize domain layers
	if err := app.initDomains(ctx); err != nil {
		app.closeInfrastructure()
		return nil, fmt.Errorf("initializing domains: %w", err)
	}

	// Register routes
	if err := app.registerRoutes(); err != nil {
		app.closeInfrastructure()
		return nil, fmt.Errorf("registering routes: %w", err)
	}

	// Initialize HTTP server
	app.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Initialize scheduler
	if cfg.Scheduler.Enabled {
		app.scheduler = scheduler.New(app.insightService, cfg.Scheduler.Interval, cfg.Scheduler.Timeout, logger)
	}

	return app, nil
}

// initInfrastructure initializes infrastructure components (DB, S3)
func (a *App) initInfrastructure(ctx context.Context) error {
	switch a.cfg.Source.Kind {
	case config.SourcePostgres:
		pool, err := database.NewPostgresPool(ctx, a.cfg.Database.PostgresDSN, database.PoolConfig{
			MaxConns:     a.cfg.Database.MaxConns,
			MinConns:     a.cfg.Database.MinConns,
			ConnLifetime: a.cfg.Database.ConnLifetime,
		})
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		a.pg = pool

	case config.SourceS3:
		store, err := storage.NewS3Storage(storage.S3Config{
			Endpoint:        a.cfg.S3.Endpoint,
			AccessKeyID:     a.cfg.S3.AccessKeyID,
			SecretAccessKey: a.cfg.S3.SecretAccessKey,
			Bucket:          a.cfg.S3.Bucket,
			Region:          a.cfg.S3.Region,
			Prefix:          a.cfg.S3.Prefix,
		})
		if err != nil {
			return fmt.Errorf("creating s3 storage: %w", err)
		}
		if err := store.Ping(ctx); err != nil {
			return fmt.Errorf("checking s3 bucket: %w", err)
		}
		a.s3 = store
	}

	return nil
}

// initDomains initializes domain layers (DAO, Service, Policy)
func (a *App) initDomains(ctx context.Context) error {
	source, err := a.exportSource()
	if err != nil {
		return err
	}

	a.insightService = service.New(source, a.logger)

	// The API is useless without data, so the first load must succeed
	if _, err := a.insightService.Reload(ctx); err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	a.insightPolicy = policy.New(a.insightService)

	return nil
}

// exportSource builds the export source for the configured kind
func (a *App) exportSource() (dao.ExportSource, error) {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = a.cfg.Source.Retries

	switch a.cfg.Source.Kind {
	case config.SourceDir:
		return dao.NewDirSource(a.cfg.Source.Dir), nil
	case config.SourceHTTP:
		client := exports.New(a.cfg.Source.BaseURL, exports.WithTimeout(a.cfg.Source.Timeout))
		return dao.NewHTTPSource(client, retryCfg, a.logger), nil
	case config.SourceS3:
		return dao.NewS3Source(a.s3, retryCfg, a.logger), nil
	case config.SourcePostgres:
		return dao.NewPostgresSource(a.pg), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", a.cfg.Source.Kind)
	}
}

// registerRoutes registers all HTTP routes
func (a *App) registerRoutes() error {
	milestone, err := a.cfg.Insights.Milestone()
	if err != nil {
		return err
	}
	location, err := a.cfg.Insights.Location()
	if err != nil {
		return err
	}

	// Health check
	a.router.Get("/healthz", a.healthHandler)
	a.router.Get("/readyz", a.readyHandler)

	// Swagger UI documentation
	swaggerHandler := httpcontroller.NewSwaggerHandler("Neo-Insights API", OpenAPISpec)
	swaggerHandler.RegisterRoutes(a.router)

	// API v1
	a.router.Route("/api/v1", func(r chi.Router) {
		insightHandler := httpcontroller.NewInsightHandler(a.insightPolicy, milestone, location)
		insightHandler.RegisterRoutes(r)
	})

	return nil
}

// healthHandler handles health check requests
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// readyHandler reports ready once a dataset is loaded
func (a *App) readyHandler(w http.ResponseWriter, r *http.Request) {
	if !a.insightService.Ready() {
		response.ServiceUnavailable(w, "dataset not loaded")
		return
	}
	response.OK(w, map[string]string{"status": "ready"})
}

// Run starts the application and blocks until shutdown signal
func (a *App) Run(ctx context.Context) error {
	// Start scheduler if enabled
	if a.scheduler != nil {
		a.scheduler.Start(ctx)
	}

	// Channel to receive errors from server
	errCh := make(chan error, 1)

	// Start HTTP server in goroutine
	go func() {
		a.logger.Info("starting HTTP server", "addr", a.cfg.Server.Address())
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		a.logger.Info("context cancelled")
	}

	// Graceful shutdown
	return a.Shutdown(context.Background())
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down...")

	// Stop scheduler
	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	// Shutdown HTTP server with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	a.closeInfrastructure()

	a.logger.Info("shutdown complete")
	return nil
}

func (a *App) closeInfrastructure() {
	if a.pg != nil {
		a.pg.Close()
	}
}

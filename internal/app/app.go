// Package app wires configuration, services, transport, and the HTTP
// server into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"hrpulse/internal/config"
	"hrpulse/internal/infrastructure"
	"hrpulse/internal/metrics"
	customMiddleware "hrpulse/internal/middleware"
	"hrpulse/internal/services"
	handlers "hrpulse/internal/transport/http"
)

const (
	Version = "1.0.0"
	AppName = "HR Pulse - Report Ingestion & Aggregation Engine"
)

// Application is the dependency container for the server process.
type Application struct {
	Config        *config.Config
	Router        *chi.Mux
	Server        *http.Server
	Metrics       *metrics.Registry
	ReportService *services.ReportService
	HealthService *services.HealthService
	Logger        *slog.Logger
}

// NewApplication creates a fully wired application instance.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	app := &Application{
		Config: cfg,
		Logger: logger,
	}

	app.initializeServices()
	app.setupRouter()
	app.createServer()

	return app, nil
}

func (a *Application) initializeServices() {
	a.Metrics = metrics.New()
	a.ReportService = services.NewReportService(a.Logger, a.Metrics)
	a.HealthService = services.NewHealthService(Version, a.ReportService, a.Logger)
}

// setupRouter configures the HTTP router with all routes.
// Middleware ordering: RequestID, RealIP, Logger, Recoverer, the rest.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(customMiddleware.Compress(5))
	r.Use(customMiddleware.StripSlashes)

	if a.Config.Server.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Server.RateLimit.RPS,
			a.Config.Server.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	reportHandler := handlers.NewReportHandler(a.ReportService, a.Config.Ingest.MaxUploadBytes, a.Logger)
	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/reports", reportHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
	})

	// Scrape endpoint stays outside the middleware chain above the API.
	r.Handle("/metrics", a.Metrics.Handler())

	a.Router = r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Run serves HTTP until the context is cancelled or a termination signal
// arrives, then shuts down within the configured grace period.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("http server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.Logger.Info("shutdown requested")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	infrastructure.CloseLogFile()
	return err
}

// Package app wires configuration, logging, observability, the loaded
// dataset, and the HTTP surface into one runnable application.
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
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/saibhavana-turai/layoffsanalysis/internal/config"
	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
	apierrors "github.com/saibhavana-turai/layoffsanalysis/internal/errors"
	"github.com/saibhavana-turai/layoffsanalysis/internal/infrastructure"
	custommiddleware "github.com/saibhavana-turai/layoffsanalysis/internal/middleware"
	"github.com/saibhavana-turai/layoffsanalysis/internal/services"
	handlers "github.com/saibhavana-turai/layoffsanalysis/internal/transport/http"
	ws "github.com/saibhavana-turai/layoffsanalysis/internal/websocket"
)

const (
	Version = "v1.0.0"
	AppName = "Layoffs Analysis - Global Layoff Trend Dashboard"
)

// Application represents the main application container
type Application struct {
	Config           *config.Config
	Logger           *slog.Logger
	Router           *chi.Mux
	Server           *http.Server
	OTelProviders    *infrastructure.OTelProviders
	WebSocketHub     *ws.Hub
	DashboardService *services.DashboardService
	HealthService    *services.HealthService

	hubCancel context.CancelFunc
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.EnsureLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	// Both input files are required before any computation; a missing file
	// is fatal for the whole session.
	if err := cfg.ValidateInputFiles(); err != nil {
		return nil, fmt.Errorf("input files unavailable: %w", err)
	}

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices loads the dataset and builds the service layer.
func (a *Application) initializeServices() error {
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, insights, err := dataset.Load(loadCtx,
		a.Config.Paths.DatasetFile,
		a.Config.Paths.SummaryFile,
		a.Logger)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	a.WebSocketHub = ws.NewHub(a.Logger)

	dashboard, err := services.NewDashboardService(data, insights, a.Logger, a.WebSocketHub, a.OTelProviders.Meter)
	if err != nil {
		return fmt.Errorf("failed to create dashboard service: %w", err)
	}
	a.DashboardService = dashboard
	a.HealthService = services.NewHealthService(dashboard, Version, a.Logger)

	return nil
}

// setupRouter configures the chi router with middleware and routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.StructuredLogger(a.Logger))
	r.Use(custommiddleware.Recoverer(a.Logger))

	if a.Config.Security.EnableCORS {
		r.Use(custommiddleware.CORS(a.Config.Security.AllowedOrigins))
	}
	if a.Config.Security.RateLimit.Enabled {
		limiter := custommiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger, a.Config.Logging.Development)

	dashboardHandler := handlers.NewDashboardHandler(a.DashboardService, a.Logger, errorHandler)
	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/dashboard", dashboardHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
	})

	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	r.Get("/ws", ws.ServeWS(a.WebSocketHub, a.Logger))

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	// Root gives API consumers a map of the surface.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]interface{}{
			"name":    AppName,
			"version": Version,
			"endpoints": []string{
				"/api/dashboard",
				"/api/dashboard/records",
				"/api/dashboard/filters",
				"/api/health",
				"/metrics",
				"/ws",
			},
		})
	})

	a.Router = r
}

// createServer builds the HTTP server from configuration.
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         a.Config.ListenAddr(),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the hub and HTTP server, then blocks until shutdown completes.
func (a *Application) Run() error {
	hubCtx, cancel := context.WithCancel(context.Background())
	a.hubCancel = cancel
	go a.WebSocketHub.Run(hubCtx)

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		cancel()
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		a.Logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	return a.Shutdown()
}

// Shutdown drains the server and flushes observability providers.
func (a *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if a.hubCancel != nil {
		a.hubCancel()
	}

	if err := a.Server.Shutdown(ctx); err != nil {
		a.Logger.Error("server shutdown failed", slog.String("error", err.Error()))
		return err
	}

	if err := a.OTelProviders.Shutdown(ctx); err != nil {
		a.Logger.Warn("otel shutdown failed", slog.String("error", err.Error()))
	}

	infrastructure.CloseLogFile()
	a.Logger.Info("shutdown complete")
	return nil
}

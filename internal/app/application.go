package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/adapters/api"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/ports"
)

const restoreTimeout = 30 * time.Second

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	resolver       *location.Resolver
	weatherUseCase *weather.UseCase
	widgets        *widget.Manager

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies builds use cases and adapters on top of an
// existing container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	resolver, err := location.NewResolver(location.ResolverDependencies{
		Providers: a.ports.GeocodingProviders,
		Cache:     a.ports.LocationCache,
		Config:    a.ports.ConfigProvider,
		Logger:    a.ports.Logger,
		Metrics:   a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create location resolver: %w", err)
	}
	a.resolver = resolver

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Resolver:        a.resolver,
		WeatherProvider: a.ports.WeatherProvider,
		Astronomy:       a.ports.AstronomyProvider,
		Cache:           a.ports.ObservationCache,
		Classifier:      a.deps.Classifier(),
		Config:          a.ports.ConfigProvider,
		Logger:          a.ports.Logger,
		Metrics:         a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	widgets, err := widget.NewManager(widget.ManagerDependencies{
		Loader:     a.weatherUseCase,
		Clock:      a.deps.Clock(),
		Repository: a.ports.WidgetRepository,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create widget manager: %w", err)
	}
	a.widgets = widgets

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	healthConfig := a.deps.HealthCheckers()
	healthConfig.WidgetCount = a.widgets.Count
	systemHealthChecker := infrastructure.NewSystemHealthChecker(healthConfig)

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		Loader:         a.weatherUseCase,
		Widgets:        a.widgets,
		Classifier:     a.deps.Classifier(),
		Clock:          a.deps.Clock(),
		HealthChecker:  systemHealthChecker,
		MetricsHandler: a.deps.Metrics().Handler(),
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	// WriteTimeout stays zero so widget event streams are not cut off
	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// RestoreWidgets starts every widget persisted by a previous run
func (a *Application) RestoreWidgets(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, restoreTimeout)
	defer cancel()

	restored, err := a.widgets.Restore(ctx)
	if err != nil {
		return restored, fmt.Errorf("restore widgets: %w", err)
	}
	return restored, nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if _, err := a.RestoreWidgets(ctx); err != nil {
		slog.Warn("Continuing without persisted widgets", "error", err)
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	// Stopping widgets closes their subscriber channels, which ends open streams
	a.widgets.StopAll()

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Widgets returns the widget manager for testing
func (a *Application) Widgets() *widget.Manager {
	return a.widgets
}

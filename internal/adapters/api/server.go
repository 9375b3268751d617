// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/core/condition"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	loader        WeatherLoader
	widgets       WidgetManager
	classifier    *condition.Classifier
	clock         *clock.Clock
	healthChecker ports.SystemHealthChecker
	metrics       http.Handler
	logger        ports.Logger
	now           func() time.Time
}

// Use case interfaces that the HTTP adapter depends on
type WeatherLoader interface {
	LoadObservation(ctx context.Context, request weather.LoadRequest) (*weather.Observation, error)
}

type WidgetManager interface {
	Create(ctx context.Context, attrs widget.Attributes) (*widget.Widget, error)
	Get(id string) (*widget.Widget, error)
	List() []*widget.Widget
	Update(ctx context.Context, id string, attrs widget.Attributes) (*widget.Widget, bool, error)
	Delete(ctx context.Context, id string) error
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	Loader        WeatherLoader
	Widgets       WidgetManager
	Classifier    *condition.Classifier
	Clock         *clock.Clock
	HealthChecker ports.SystemHealthChecker
	// MetricsHandler serves /metrics; optional
	MetricsHandler http.Handler
	Logger         ports.Logger
	Now            func() time.Time
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	classifier := opts.Classifier
	if classifier == nil {
		classifier = condition.NewClassifier(condition.DefaultWindyThresholdKph)
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New(clock.WithLogger(opts.Logger))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(opts.Logger))

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		loader:        opts.Loader,
		widgets:       opts.Widgets,
		classifier:    classifier,
		clock:         clk,
		healthChecker: opts.HealthChecker,
		metrics:       opts.MetricsHandler,
		logger:        opts.Logger,
		now:           now,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Loader == nil {
		return errors.NewValidationError("weather loader is required")
	}
	if opts.Widgets == nil {
		return errors.NewValidationError("widget manager is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/classify", s.classify)

		widgets := api.Group("/widgets")
		widgets.POST("", s.createWidget)
		widgets.GET("", s.listWidgets)
		widgets.GET("/:id", s.getWidget)
		widgets.PUT("/:id", s.updateWidget)
		widgets.DELETE("/:id", s.deleteWidget)
		widgets.POST("/:id/reload", s.reloadWidget)
		widgets.GET("/:id/stream", s.streamWidget)
	}

	s.router.GET("/health", s.health)
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics))
	}
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// requestLogger logs one line per request through the Logger port
func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []ports.Field{
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("HTTP request", fields...)
			return
		}
		logger.Debug("HTTP request", fields...)
	}
}

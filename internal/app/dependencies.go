package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"weatherwidget.app/internal/adapters/database"
	"weatherwidget.app/internal/adapters/external"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/core/condition"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/logger"
)

const zipcodeProvisionTimeout = 2 * time.Minute

// DependencyContainer builds and owns every adapter the application uses
type DependencyContainer struct {
	config *config.Config
	db     *gorm.DB
	ports  *ports.ApplicationPorts

	metrics        *infrastructure.PrometheusMetricsCollector
	weatherManager *external.WeatherProviderManagerAdapter
	clock          *clock.Clock
	classifier     *condition.Classifier
	health         infrastructure.SystemHealthCheckerConfig

	closers []io.Closer
}

// NewDependencyContainer wires adapters from configuration. A nil db opens
// the configured database; tests pass their own.
func NewDependencyContainer(cfg *config.Config, db *gorm.DB) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg, db: db}

	logger := container.initializeLogging()

	if container.db == nil {
		if err := container.initializeDatabase(); err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}
	} else if err := database.Migrate(container.db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := container.initializePorts(logger); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeLogging() ports.Logger {
	appLogger := logger.New(logger.Options{
		Level:  c.config.Logging.Level,
		Format: c.config.Logging.Format,
	})
	appLogger.Install()
	return infrastructure.NewSlogLoggerAdapter(appLogger.Logger)
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

	db, err := database.Open(c.config.Database)
	if err != nil {
		return err
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

// providerLogger returns the file logger for upstream traffic, falling back
// to the application logger
func (c *DependencyContainer) providerLogger(appLogger ports.Logger) ports.Logger {
	logCfg := c.config.Logging
	if !logCfg.ProviderLoggingEnabled || logCfg.ProviderLogFilePath == "" {
		return appLogger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(logCfg.ProviderLogFilePath, logCfg.Level)
	if err != nil {
		slog.Warn("Failed to create provider file logger, falling back to slog", "error", err)
		return appLogger
	}

	c.closers = append(c.closers, fileLogger)
	slog.Info("Provider request logging enabled", "path", fileLogger.Path())
	return fileLogger
}

func (c *DependencyContainer) initializePorts(logger ports.Logger) error {
	slog.Info("Initializing ports...")

	c.metrics = infrastructure.NewPrometheusMetricsCollector()
	providerLogger := c.providerLogger(logger)

	hostClock, err := c.newClock(logger)
	if err != nil {
		return err
	}
	c.clock = hostClock
	c.classifier = condition.NewClassifier(c.config.Widget.WindyThresholdKph)

	// Cache
	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	if closer, ok := cacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	if stats, ok := cacheProvider.(ports.CacheStatsProvider); ok {
		if err := c.metrics.RegisterCacheStats(c.config.Cache.Type.String(), stats); err != nil {
			slog.Warn("Failed to register cache stats", "error", err)
		}
	}
	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	// Geocoding
	geoCfg := c.config.Geocoding
	geocoders := external.NewGeocodingChain(external.GeocodingChainConfig{
		ProviderOrder:      geoCfg.ProviderOrder,
		OpenCageKey:        geoCfg.OpenCageKey,
		OpenCageURL:        geoCfg.OpenCageBaseURL,
		NominatimEnabled:   geoCfg.NominatimEnabled,
		NominatimURL:       geoCfg.NominatimBaseURL,
		NominatimUserAgent: geoCfg.NominatimUserAgent,
		NominatimRPS:       geoCfg.NominatimRPS,
		PositionstackKey:   geoCfg.PositionstackKey,
		PositionstackURL:   geoCfg.PositionstackBaseURL,
		Zipcode:            c.zipcodeProvider(logger),
		LogRequests:        c.config.Logging.ProviderLoggingEnabled,
		ProviderLogger:     providerLogger,
		Logger:             logger,
	})

	// Weather
	weatherCfg := c.config.Weather
	c.weatherManager = external.NewWeatherProviderManagerAdapter(external.ProviderManagerConfig{
		OpenMeteoEnabled:  weatherCfg.OpenMeteoEnabled,
		OpenMeteoURL:      weatherCfg.OpenMeteoBaseURL,
		WeatherAPIKey:     weatherCfg.APIKey,
		WeatherAPIBaseURL: weatherCfg.BaseURL,
		OpenWeatherKey:    weatherCfg.OpenWeatherMapKey,
		OpenWeatherURL:    weatherCfg.OpenWeatherMapBaseURL,
		AccuWeatherKey:    weatherCfg.AccuWeatherKey,
		AccuWeatherURL:    weatherCfg.AccuWeatherBaseURL,
		ProviderOrder:     weatherCfg.ProviderOrder,
		LogRequests:       c.config.Logging.ProviderLoggingEnabled,
		ProviderLogger:    providerLogger,
		Logger:            logger,
		Metrics:           c.metrics,
	})

	var providerManager ports.WeatherProviderManager = c.weatherManager
	if c.config.Logging.ProviderLoggingEnabled {
		providerManager = external.NewWeatherProviderManagerLoggingDecorator(providerManager, providerLogger)
		slog.Info("Weather provider logging enabled")
	}

	var astronomy ports.AstronomyProvider
	if weatherCfg.AstronomyEnabled && weatherCfg.APIKey != "" {
		astronomy = external.NewWeatherAPIAstronomyProvider(external.WeatherAPIProviderParams{
			APIKey:  weatherCfg.APIKey,
			BaseURL: weatherCfg.BaseURL,
			Logger:  logger,
		})
		slog.Info("Astronomy provider enabled", "provider", astronomy.GetProviderName())
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	c.ports = &ports.ApplicationPorts{
		// Location
		GeocodingProviders: geocoders,
		LocationCache:      external.NewLocationCacheAdapter(cacheProvider),

		// Weather
		WeatherProvider:   providerManager,
		AstronomyProvider: astronomy,
		ObservationCache:  external.NewObservationCacheAdapter(cacheProvider),

		// Widgets
		WidgetRepository: database.NewWidgetRepositoryAdapter(c.db),

		// Cache
		CacheProvider: cacheProvider,

		// Infrastructure
		ConfigProvider: configProvider,
		Logger:         logger,
		Metrics:        c.metrics,
		Database:       c.db,
	}

	c.health = infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:  infrastructure.NewDatabaseHealthChecker(c.db),
		CacheChecker:     infrastructure.NewCacheHealthChecker(c.config.Cache.Type.String(), cacheProvider),
		WeatherChecker:   infrastructure.NewWeatherProvidersHealthChecker(providerManager, c.config.Widget.MockFallback),
		GeocodingChecker: infrastructure.NewGeocodingHealthChecker(geocoders),
	}

	slog.Info("Ports initialized successfully",
		"geocoders", len(geocoders),
		"weather_providers", c.weatherManager.ProviderNames())
	return nil
}

// zipcodeProvider opens the offline ZIP database when the geocoding order
// names it. A provisioning failure only removes it from the chain.
func (c *DependencyContainer) zipcodeProvider(logger ports.Logger) ports.GeocodingProvider {
	geoCfg := c.config.Geocoding
	if !geoCfg.UsesZipcode() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), zipcodeProvisionTimeout)
	defer cancel()

	db, err := external.OpenZipcodeDatabase(ctx, geoCfg.ZipcodeDBPath, geoCfg.ZipcodeCSVURL, nil, logger)
	if err != nil {
		slog.Warn("Zipcode provider disabled", "path", geoCfg.ZipcodeDBPath, "error", err)
		return nil
	}

	provider := external.NewZipcodeProviderAdapter(db, logger)
	c.closers = append(c.closers, provider)
	return provider
}

func (c *DependencyContainer) newClock(logger ports.Logger) (*clock.Clock, error) {
	opts := []clock.Option{clock.WithLogger(logger)}
	if zone := c.config.Widget.HostTimezone; zone != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("load host timezone %q: %w", zone, err)
		}
		opts = append(opts, clock.WithHostLocation(loc))
	}
	return clock.New(opts...), nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// HealthCheckers returns the component checkers; the caller adds the widget count
func (c *DependencyContainer) HealthCheckers() infrastructure.SystemHealthCheckerConfig {
	return c.health
}

func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

func (c *DependencyContainer) Clock() *clock.Clock {
	return c.clock
}

func (c *DependencyContainer) Classifier() *condition.Classifier {
	return c.classifier
}

// Cleanup closes the database and every other opened resource
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if err := database.Close(c.db); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

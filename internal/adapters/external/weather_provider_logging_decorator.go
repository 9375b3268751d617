package external

import (
	"context"
	"time"

	"weatherwidget.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FetchCurrent wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) FetchCurrent(ctx context.Context, lat, lon float64, units ports.Units) (*ports.CurrentWeather, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("latitude", lat),
		ports.F("longitude", lon),
		ports.F("units", string(units)),
		ports.F("event", "request"))

	startTime := time.Now()
	weather, err := d.provider.FetchCurrent(ctx, lat, lon, units)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if weather != nil {
		fields = append(fields,
			ports.F("temperature", weather.Temperature),
			ports.F("description", weather.Text))
	}
	d.logger.Info("Weather API request completed", fields...)

	return weather, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// WeatherProviderManagerLoggingDecorator decorates the provider manager with logging
type WeatherProviderManagerLoggingDecorator struct {
	manager ports.WeatherProviderManager
	logger  ports.Logger
}

// NewWeatherProviderManagerLoggingDecorator creates a new logging decorator for weather provider manager
func NewWeatherProviderManagerLoggingDecorator(manager ports.WeatherProviderManager, logger ports.Logger) ports.WeatherProviderManager {
	return &WeatherProviderManagerLoggingDecorator{
		manager: manager,
		logger:  logger,
	}
}

// FetchCurrent wraps the manager call with structured logging
func (d *WeatherProviderManagerLoggingDecorator) FetchCurrent(ctx context.Context, lat, lon float64, units ports.Units) (*ports.CurrentWeather, error) {
	d.logger.Info("Weather provider chain started",
		ports.F("latitude", lat),
		ports.F("longitude", lon),
		ports.F("event", "chain_start"))

	startTime := time.Now()
	weather, err := d.manager.FetchCurrent(ctx, lat, lon, units)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather provider chain failed",
			ports.F("event", "chain_error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	provider := ""
	if weather != nil {
		provider = weather.Provider
	}
	d.logger.Info("Weather provider chain completed",
		ports.F("event", "chain_success"),
		ports.F("provider", provider),
		ports.F("duration_ms", duration.Milliseconds()))

	return weather, nil
}

// GetProviderInfo delegates to the wrapped manager
func (d *WeatherProviderManagerLoggingDecorator) GetProviderInfo() map[string]interface{} {
	info := d.manager.GetProviderInfo()
	info["logging_enabled"] = true
	return info
}

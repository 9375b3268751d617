package external

import (
	"context"
	"fmt"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// WeatherProviderManagerAdapter implements Chain of Responsibility pattern for weather providers.
// An unavailable provider hands over to the next one; a malformed payload ends
// the chain.
type WeatherProviderManagerAdapter struct {
	providers []ports.WeatherProvider
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

// ProviderManagerConfig holds configuration for creating the provider manager
type ProviderManagerConfig struct {
	OpenMeteoEnabled  bool
	OpenMeteoURL      string
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	OpenWeatherKey    string
	OpenWeatherURL    string
	AccuWeatherKey    string
	AccuWeatherURL    string
	ProviderOrder     []string
	// LogRequests wraps each provider in a WeatherProviderLoggingDecorator
	LogRequests bool
	// ProviderLogger receives decorator output; Logger is used when nil
	ProviderLogger ports.Logger
	Client         HTTPClient
	Logger         ports.Logger
	Metrics        ports.MetricsCollector
}

// NewWeatherProviderManagerAdapter creates a new weather provider manager with Chain of Responsibility
func NewWeatherProviderManagerAdapter(config ProviderManagerConfig) *WeatherProviderManagerAdapter {
	manager := &WeatherProviderManagerAdapter{
		logger:  config.Logger,
		metrics: config.Metrics,
	}

	providerMap := manager.createProviderMap(config)
	for _, name := range config.ProviderOrder {
		provider, exists := providerMap[name]
		if !exists {
			continue
		}
		if config.LogRequests {
			logger := config.ProviderLogger
			if logger == nil {
				logger = config.Logger
			}
			provider = NewWeatherProviderLoggingDecorator(provider, logger)
		}
		manager.providers = append(manager.providers, provider)
		delete(providerMap, name)
	}

	return manager
}

// NewWeatherProviderManagerWithProviders builds a manager over an explicit chain
func NewWeatherProviderManagerWithProviders(providers []ports.WeatherProvider, logger ports.Logger, metrics ports.MetricsCollector) *WeatherProviderManagerAdapter {
	return &WeatherProviderManagerAdapter{
		providers: providers,
		logger:    logger,
		metrics:   metrics,
	}
}

func (m *WeatherProviderManagerAdapter) createProviderMap(config ProviderManagerConfig) map[string]ports.WeatherProvider {
	providers := make(map[string]ports.WeatherProvider)

	if config.OpenMeteoEnabled {
		providers["openmeteo"] = NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
			BaseURL: config.OpenMeteoURL,
			Client:  config.Client,
			Logger:  m.logger,
		})
		m.debug("Created Open-Meteo provider", "openmeteo")
	}

	if config.WeatherAPIKey != "" {
		providers["weatherapi"] = NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
			APIKey:  config.WeatherAPIKey,
			BaseURL: config.WeatherAPIBaseURL,
			Client:  config.Client,
			Logger:  m.logger,
		})
		m.debug("Created WeatherAPI provider", "weatherapi")
	}

	if config.OpenWeatherKey != "" {
		providers["openweathermap"] = NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
			APIKey:  config.OpenWeatherKey,
			BaseURL: config.OpenWeatherURL,
			Client:  config.Client,
			Logger:  m.logger,
		})
		m.debug("Created OpenWeatherMap provider", "openweathermap")
	}

	if config.AccuWeatherKey != "" {
		providers["accuweather"] = NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{
			APIKey:  config.AccuWeatherKey,
			BaseURL: config.AccuWeatherURL,
			Client:  config.Client,
			Logger:  m.logger,
		})
		m.debug("Created AccuWeather provider", "accuweather")
	}

	return providers
}

func (m *WeatherProviderManagerAdapter) debug(msg, provider string) {
	if m.logger != nil {
		m.logger.Debug(msg, ports.F("provider", provider))
	}
}

// FetchCurrent implements Chain of Responsibility - tries each provider until one succeeds
func (m *WeatherProviderManagerAdapter) FetchCurrent(ctx context.Context, lat, lon float64, units ports.Units) (*ports.CurrentWeather, error) {
	if len(m.providers) == 0 {
		return nil, errors.NewProviderUnavailableError("no weather providers configured", nil)
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("weather lookup interrupted: %w", err)
		}

		providerName := provider.GetProviderName()
		if m.logger != nil {
			m.logger.Debug("Trying weather provider",
				ports.F("provider", providerName),
				ports.F("attempt", i+1),
				ports.F("latitude", lat),
				ports.F("longitude", lon))
		}

		weather, err := provider.FetchCurrent(ctx, lat, lon, units)
		if err == nil && weather == nil {
			err = errors.NewInvalidWeatherPayloadError(providerName+" returned no weather", nil)
		}
		if err == nil {
			m.record(providerName, ports.OutcomeSuccess)
			return weather, nil
		}

		if errors.IsInvalidWeatherPayloadError(err) {
			m.record(providerName, ports.OutcomeFailure)
			if m.logger != nil {
				m.logger.Error("Weather provider returned malformed data",
					ports.F("provider", providerName),
					ports.F("error", err.Error()))
			}
			return nil, err
		}

		lastErr = err
		m.record(providerName, ports.OutcomeFailure)
		if m.logger != nil {
			m.logger.Warn("Weather provider failed, trying next",
				ports.F("provider", providerName),
				ports.F("error", err.Error()))
		}
	}

	if m.logger != nil {
		m.logger.Error("All weather providers failed",
			ports.F("providers_tried", len(m.providers)),
			ports.F("last_error", lastErr.Error()))
	}

	return nil, errors.NewProviderUnavailableError(
		fmt.Sprintf("all weather providers failed (tried %d providers)", len(m.providers)), lastErr)
}

func (m *WeatherProviderManagerAdapter) record(provider, outcome string) {
	if m.metrics != nil {
		m.metrics.RecordWeatherRequest(provider, outcome)
	}
}

// ProviderNames returns the chain order
func (m *WeatherProviderManagerAdapter) ProviderNames() []string {
	names := make([]string, len(m.providers))
	for i, provider := range m.providers {
		names[i] = provider.GetProviderName()
	}
	return names
}

// GetProviderInfo returns information about configured providers
func (m *WeatherProviderManagerAdapter) GetProviderInfo() map[string]interface{} {
	return map[string]interface{}{
		"total_providers":  len(m.providers),
		"provider_order":   m.ProviderNames(),
		"chain_enabled":    true,
		"fallback_enabled": len(m.providers) > 1,
	}
}

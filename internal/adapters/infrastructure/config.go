package infrastructure

import (
	"time"

	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns weather load-cycle configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache:  c.config.Weather.EnableCache,
		CacheTTL:     time.Duration(c.config.Weather.CacheTTLMinutes) * time.Minute,
		MockFallback: c.config.Widget.MockFallback,
	}
}

// GetLocationConfig returns location resolution configuration
func (c *ConfigProviderAdapter) GetLocationConfig() ports.LocationConfig {
	return ports.LocationConfig{
		EnableCache: c.config.Geocoding.EnableCache,
		CacheTTL:    time.Duration(c.config.Geocoding.CacheTTLMinutes) * time.Minute,
	}
}

// GetWidgetConfig returns widget defaults
func (c *ConfigProviderAdapter) GetWidgetConfig() ports.WidgetConfig {
	w := c.config.Widget
	return ports.WidgetConfig{
		DefaultUnits:      ports.Units(w.DefaultUnits),
		ClockInterval:     time.Duration(w.ClockIntervalSeconds) * time.Second,
		RefreshInterval:   time.Duration(w.RefreshIntervalMinutes) * time.Minute,
		LoadTimeout:       time.Duration(w.LoadTimeoutSeconds) * time.Second,
		WindyThresholdKph: w.WindyThresholdKph,
	}
}

package external

import (
	"context"
	"time"

	"weatherwidget.app/internal/ports"
)

// GeocodingProviderLoggingDecorator decorates geocoding providers with structured logging
type GeocodingProviderLoggingDecorator struct {
	provider ports.GeocodingProvider
	logger   ports.Logger
}

// NewGeocodingProviderLoggingDecorator creates a new logging decorator for geocoding providers
func NewGeocodingProviderLoggingDecorator(provider ports.GeocodingProvider, logger ports.Logger) ports.GeocodingProvider {
	return &GeocodingProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Search wraps the provider call with structured logging
func (d *GeocodingProviderLoggingDecorator) Search(ctx context.Context, query string) (*ports.GeocodeResult, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Geocoding request started",
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "request"))

	startTime := time.Now()
	result, err := d.provider.Search(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("provider", providerName),
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if result != nil {
		fields = append(fields,
			ports.F("latitude", result.Latitude),
			ports.F("longitude", result.Longitude))
	}
	d.logger.Info("Geocoding request completed", fields...)

	return result, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *GeocodingProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// ObservationCacheAdapter bridges generic CacheProvider to the raw current weather cache
type ObservationCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewObservationCacheAdapter creates an observation cache using a generic cache provider
func NewObservationCacheAdapter(cacheProvider ports.CacheProvider) ports.ObservationCache {
	return &ObservationCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves current weather from cache
func (w *ObservationCacheAdapter) Get(ctx context.Context, key string) (*ports.CurrentWeather, error) {
	data, err := w.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var weather ports.CurrentWeather
	if err := json.Unmarshal(data, &weather); err != nil {
		return nil, errors.NewInvalidWeatherPayloadError("failed to deserialize cached weather", err)
	}

	return &weather, nil
}

// Set stores current weather in cache
func (w *ObservationCacheAdapter) Set(ctx context.Context, key string, weather *ports.CurrentWeather, ttl time.Duration) error {
	if weather == nil {
		return errors.NewValidationError("weather data cannot be nil")
	}

	data, err := json.Marshal(weather)
	if err != nil {
		return errors.NewInvalidWeatherPayloadError("failed to serialize weather", err)
	}

	return w.cacheProvider.Set(ctx, key, data, ttl)
}

// LocationCacheAdapter bridges generic CacheProvider to the resolved location cache
type LocationCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewLocationCacheAdapter creates a location cache using a generic cache provider
func NewLocationCacheAdapter(cacheProvider ports.CacheProvider) ports.LocationCache {
	return &LocationCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves a resolved location from cache
func (l *LocationCacheAdapter) Get(ctx context.Context, key string) (*ports.LocationData, error) {
	data, err := l.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var location ports.LocationData
	if err := json.Unmarshal(data, &location); err != nil {
		return nil, errors.NewValidationError("failed to deserialize cached location")
	}

	return &location, nil
}

// Set stores a resolved location in cache
func (l *LocationCacheAdapter) Set(ctx context.Context, key string, location *ports.LocationData, ttl time.Duration) error {
	if location == nil {
		return errors.NewValidationError("location cannot be nil")
	}

	data, err := json.Marshal(location)
	if err != nil {
		return errors.NewValidationError("failed to serialize location")
	}

	return l.cacheProvider.Set(ctx, key, data, ttl)
}

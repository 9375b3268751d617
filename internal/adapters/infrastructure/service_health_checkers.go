package infrastructure

import (
	"context"

	"weatherwidget.app/internal/ports"
)

// Pinger is implemented by cache backends that can probe their server
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports the cache backend and its counters
type CacheHealthChecker struct {
	backend string
	cache   ports.CacheProvider
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(backend string, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{backend: backend, cache: cache}
}

// Check pings the backend when it supports it
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"backend": c.backend,
		},
	}

	if c.cache == nil {
		status.Status = StatusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	if stats, ok := c.cache.(ports.CacheStatsProvider); ok {
		s := stats.GetStats()
		status.Details["hits"] = s.Hits
		status.Details["misses"] = s.Misses
		status.Details["hit_ratio"] = s.HitRatio
	}

	if pinger, ok := c.cache.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = StatusUnhealthy
			status.Error = err.Error()
		}
	}

	return status
}

// WeatherProvidersHealthChecker reports the configured weather chain. An
// empty chain is degraded rather than unhealthy when the mock fallback can
// still answer.
type WeatherProvidersHealthChecker struct {
	manager      ports.WeatherProviderManager
	mockFallback bool
}

// NewWeatherProvidersHealthChecker creates a new weather provider health checker
func NewWeatherProvidersHealthChecker(manager ports.WeatherProviderManager, mockFallback bool) *WeatherProvidersHealthChecker {
	return &WeatherProvidersHealthChecker{manager: manager, mockFallback: mockFallback}
}

// Check inspects the provider chain configuration
func (w *WeatherProvidersHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weather_providers",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"mock_fallback": w.mockFallback,
		},
	}

	if w.manager == nil {
		status.Status = StatusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}

	info := w.manager.GetProviderInfo()
	for k, v := range info {
		status.Details[k] = v
	}

	if total, _ := info["total_providers"].(int); total == 0 {
		status.Error = "no weather providers configured"
		status.Status = StatusUnhealthy
		if w.mockFallback {
			status.Status = StatusDegraded
		}
	}

	return status
}

// GeocodingHealthChecker reports the geocoding chain
type GeocodingHealthChecker struct {
	providers []ports.GeocodingProvider
}

// NewGeocodingHealthChecker creates a new geocoding health checker
func NewGeocodingHealthChecker(providers []ports.GeocodingProvider) *GeocodingHealthChecker {
	return &GeocodingHealthChecker{providers: providers}
}

// Check lists the configured providers. Without any only the static table
// can resolve locations, which is degraded.
func (g *GeocodingHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	names := make([]string, 0, len(g.providers))
	for _, p := range g.providers {
		names = append(names, p.GetProviderName())
	}

	status := ports.HealthStatus{
		Component: "geocoding",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"provider_order": names,
		},
	}
	if len(names) == 0 {
		status.Status = StatusDegraded
		status.Error = "no geocoding providers configured"
	}
	return status
}

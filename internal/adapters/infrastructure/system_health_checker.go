package infrastructure

import (
	"context"
	"sync"

	"weatherwidget.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
	widgets  func() int
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker  ports.HealthChecker
	CacheChecker     ports.HealthChecker
	WeatherChecker   ports.HealthChecker
	GeocodingChecker ports.HealthChecker
	// WidgetCount reports running widgets; optional
	WidgetCount func() int
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	for name, c := range map[string]ports.HealthChecker{
		"database":          config.DatabaseChecker,
		"cache":             config.CacheChecker,
		"weather_providers": config.WeatherChecker,
		"geocoding":         config.GeocodingChecker,
	} {
		if c != nil {
			checkers[name] = c
		}
	}

	return &SystemHealthChecker{
		checkers: checkers,
		widgets:  config.WidgetCount,
	}
}

// CheckAll runs every check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for name, checker := range s.checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	if s.widgets != nil {
		results["widgets"] = ports.HealthStatus{
			Component: "widgets",
			Status:    StatusHealthy,
			Details: map[string]interface{}{
				"running": s.widgets(),
			},
		}
	}

	return results
}

// Overall folds component statuses into one: any unhealthy component makes
// the system unhealthy, any degraded one makes it degraded
func Overall(results map[string]ports.HealthStatus) string {
	overall := StatusHealthy
	for _, r := range results {
		switch r.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			overall = StatusDegraded
		}
	}
	return overall
}

package ports

import (
	"time"
)

// WeatherConfig represents weather load-cycle configuration
type WeatherConfig struct {
	EnableCache  bool
	CacheTTL     time.Duration
	MockFallback bool
}

// LocationConfig represents location resolution configuration
type LocationConfig struct {
	EnableCache bool
	CacheTTL    time.Duration
}

// WidgetConfig represents widget instance defaults
type WidgetConfig struct {
	DefaultUnits      Units
	ClockInterval     time.Duration
	RefreshInterval   time.Duration
	LoadTimeout       time.Duration
	WindyThresholdKph float64
}

// ConfigProvider defines the contract for configuration access from use cases
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetLocationConfig() LocationConfig
	GetWidgetConfig() WidgetConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Outcome labels for MetricsCollector
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeNotFound = "not_found"
	OutcomeDegraded = "degraded"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordGeocodingRequest(provider, outcome string)
	RecordWeatherRequest(provider, outcome string)
	RecordLoadCycle(outcome string)
	RecordReloadDropped()
	RecordCacheResult(cache string, hit bool)
}

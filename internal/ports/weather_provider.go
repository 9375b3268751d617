package ports

import (
	"context"
	"time"
)

// Units is the widget temperature unit system
type Units string

const (
	UnitsFahrenheit Units = "F"
	UnitsCelsius    Units = "C"
)

// CurrentWeather is the raw provider payload for current conditions.
// Exactly one of Code and Text carries the condition.
type CurrentWeather struct {
	Code         *int      `json:"code,omitempty"`
	Text         string    `json:"text,omitempty"`
	Temperature  float64   `json:"temperature"`
	Units        Units     `json:"units"`
	WindSpeedKph float64   `json:"wind_speed_kph"`
	Humidity     *float64  `json:"humidity,omitempty"`
	TimezoneID   string    `json:"timezone_id,omitempty"`
	Provider     string    `json:"provider"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// Astronomy holds local sunrise/sunset strings in "H:MM AM" form
type Astronomy struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// WeatherProvider defines the contract for current weather data providers
type WeatherProvider interface {
	FetchCurrent(ctx context.Context, lat, lon float64, units Units) (*CurrentWeather, error)
	GetProviderName() string
}

// WeatherProviderManager defines the contract for managing multiple weather providers
type WeatherProviderManager interface {
	FetchCurrent(ctx context.Context, lat, lon float64, units Units) (*CurrentWeather, error)
	GetProviderInfo() map[string]interface{}
}

// AstronomyProvider defines the contract for sunrise/sunset lookups
type AstronomyProvider interface {
	FetchAstronomy(ctx context.Context, lat, lon float64) (*Astronomy, error)
	GetProviderName() string
}

// ObservationCache defines the contract for caching raw current weather
type ObservationCache interface {
	Get(ctx context.Context, key string) (*CurrentWeather, error)
	Set(ctx context.Context, key string, weather *CurrentWeather, ttl time.Duration) error
}

package ports

import (
	"context"
	"time"
)

// AddressComponents are the place-name fields a geocoder may return
type AddressComponents struct {
	City         string
	Town         string
	Village      string
	Municipality string
	Hamlet       string
	Suburb       string
	County       string
	State        string
	Country      string
}

// GeocodeResult is a single provider match
type GeocodeResult struct {
	Latitude         float64
	Longitude        float64
	Components       AddressComponents
	FormattedAddress string
	TimezoneID       string
}

// GeocodingProvider resolves a free-form place string to coordinates.
// A provider with no match returns a NotFound AppError.
type GeocodingProvider interface {
	Search(ctx context.Context, query string) (*GeocodeResult, error)
	GetProviderName() string
}

// LocationData is the cacheable form of a resolved location
type LocationData struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
	TimezoneID  string  `json:"timezone_id"`
	Source      string  `json:"source"`
}

// LocationCache defines the contract for caching resolved locations
type LocationCache interface {
	Get(ctx context.Context, key string) (*LocationData, error)
	Set(ctx context.Context, key string, location *LocationData, ttl time.Duration) error
}

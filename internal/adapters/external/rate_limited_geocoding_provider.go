package external

import (
	"context"

	"golang.org/x/time/rate"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// NominatimRequestsPerSecond is the public instance usage limit
const NominatimRequestsPerSecond = 1.0

// RateLimitedGeocodingProvider wraps a GeocodingProvider with rate limiting
type RateLimitedGeocodingProvider struct {
	provider ports.GeocodingProvider
	limiter  *rate.Limiter
}

// NewRateLimitedGeocodingProvider creates a new rate limited geocoding provider.
// rps may be fractional for less than one request per second.
func NewRateLimitedGeocodingProvider(provider ports.GeocodingProvider, rps float64, burst int) *RateLimitedGeocodingProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedGeocodingProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Search waits for a limiter token or context cancellation, then forwards
func (r *RateLimitedGeocodingProvider) Search(ctx context.Context, query string) (*ports.GeocodeResult, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewProviderUnavailableError("rate limit wait canceled", err)
	}
	return r.provider.Search(ctx, query)
}

// GetProviderName returns the wrapped provider's name
func (r *RateLimitedGeocodingProvider) GetProviderName() string {
	return r.provider.GetProviderName()
}

var _ ports.GeocodingProvider = (*RateLimitedGeocodingProvider)(nil)

package external

import (
	"weatherwidget.app/internal/ports"
)

// GeocodingChainConfig holds configuration for building the geocoding chain
type GeocodingChainConfig struct {
	ProviderOrder      []string
	OpenCageKey        string
	OpenCageURL        string
	NominatimEnabled   bool
	NominatimURL       string
	NominatimUserAgent string
	// NominatimRPS of zero uses NominatimRequestsPerSecond
	NominatimRPS     float64
	PositionstackKey string
	PositionstackURL string
	// Zipcode is added when the order names it and it is non-nil
	Zipcode ports.GeocodingProvider
	// LogRequests wraps each provider in a GeocodingProviderLoggingDecorator
	LogRequests    bool
	ProviderLogger ports.Logger
	Client         HTTPClient
	Logger         ports.Logger
}

// NewGeocodingChain returns the configured providers in order. Providers that
// need a key are skipped when it is missing.
func NewGeocodingChain(config GeocodingChainConfig) []ports.GeocodingProvider {
	available := make(map[string]ports.GeocodingProvider)

	if config.OpenCageKey != "" {
		available["opencage"] = NewOpenCageProviderAdapter(OpenCageProviderParams{
			APIKey:  config.OpenCageKey,
			BaseURL: config.OpenCageURL,
			Client:  config.Client,
			Logger:  config.Logger,
		})
	}

	if config.NominatimEnabled {
		rps := config.NominatimRPS
		if rps <= 0 {
			rps = NominatimRequestsPerSecond
		}
		available["nominatim"] = NewRateLimitedGeocodingProvider(
			NewNominatimProviderAdapter(NominatimProviderParams{
				BaseURL:   config.NominatimURL,
				UserAgent: config.NominatimUserAgent,
				Client:    config.Client,
				Logger:    config.Logger,
			}), rps, 1)
	}

	if config.PositionstackKey != "" {
		available["positionstack"] = NewPositionstackProviderAdapter(PositionstackProviderParams{
			APIKey:  config.PositionstackKey,
			BaseURL: config.PositionstackURL,
			Client:  config.Client,
			Logger:  config.Logger,
		})
	}

	if config.Zipcode != nil {
		available["zipcode"] = config.Zipcode
	}

	var chain []ports.GeocodingProvider
	for _, name := range config.ProviderOrder {
		provider, ok := available[name]
		if !ok {
			if config.Logger != nil {
				config.Logger.Debug("Skipping unconfigured geocoding provider", ports.F("provider", name))
			}
			continue
		}
		if config.LogRequests {
			logger := config.ProviderLogger
			if logger == nil {
				logger = config.Logger
			}
			provider = NewGeocodingProviderLoggingDecorator(provider, logger)
		}
		chain = append(chain, provider)
		delete(available, name)
	}

	return chain
}

package weather

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/core/condition"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const cacheName = "observation"

// LocationResolver resolves widget location strings
type LocationResolver interface {
	Resolve(ctx context.Context, query string) (*location.ResolvedLocation, error)
}

type UseCase struct {
	resolver   LocationResolver
	provider   ports.WeatherProviderManager
	astronomy  ports.AstronomyProvider
	cache      ports.ObservationCache
	classifier *condition.Classifier
	config     ports.ConfigProvider
	logger     ports.Logger
	metrics    ports.MetricsCollector
	now        func() time.Time
}

type UseCaseDependencies struct {
	Resolver        LocationResolver
	WeatherProvider ports.WeatherProviderManager
	// Astronomy is optional; without it night falls back to the fixed window
	Astronomy  ports.AstronomyProvider
	Cache      ports.ObservationCache
	Classifier *condition.Classifier
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	Now        func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("location resolver is required")
	}
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Config.GetWeatherConfig().EnableCache && deps.Cache == nil {
		return nil, errors.NewValidationError("observation cache is required when caching is enabled")
	}

	classifier := deps.Classifier
	if classifier == nil {
		classifier = condition.NewClassifier(deps.Config.GetWidgetConfig().WindyThresholdKph)
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		resolver:   deps.Resolver,
		provider:   deps.WeatherProvider,
		astronomy:  deps.Astronomy,
		cache:      deps.Cache,
		classifier: classifier,
		config:     deps.Config,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		now:        now,
	}, nil
}

// LoadObservation runs one load cycle: resolve, fetch, classify, astronomy
func (uc *UseCase) LoadObservation(ctx context.Context, request LoadRequest) (*Observation, error) {
	request.Normalize(uc.config.GetWidgetConfig().DefaultUnits)
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid load request: " + err.Error())
	}

	obs, err := uc.load(ctx, request)
	if err != nil {
		uc.metrics.RecordLoadCycle(ports.OutcomeFailure)
		uc.logger.Error("Failed to load weather",
			ports.F("location", request.Location),
			ports.F("error", err))
		return nil, fmt.Errorf("load weather for %s: %w", request.Location, err)
	}

	outcome := ports.OutcomeSuccess
	if obs.Degraded {
		outcome = ports.OutcomeDegraded
	}
	uc.metrics.RecordLoadCycle(outcome)

	uc.logger.Debug("Weather loaded",
		ports.F("location", obs.Location.DisplayName),
		ports.F("provider", obs.Provider),
		ports.F("condition", obs.Condition.Name),
		ports.F("temperature", obs.Temperature))
	return obs, nil
}

func (uc *UseCase) load(ctx context.Context, request LoadRequest) (*Observation, error) {
	loc, err := uc.resolver.Resolve(ctx, request.Location)
	if err != nil {
		return nil, err
	}

	current, degraded, err := uc.fetchCurrent(ctx, loc, request.Units)
	if err != nil {
		return nil, err
	}

	resolved := *loc
	if zone := strings.TrimSpace(current.TimezoneID); zone != "" && zone != resolved.TimezoneID {
		if _, zoneErr := time.LoadLocation(zone); zoneErr == nil {
			uc.logger.Debug("Using timezone reported by weather provider",
				ports.F("resolved", resolved.TimezoneID),
				ports.F("provider_timezone", zone))
			resolved.TimezoneID = zone
		}
	}

	cond := uc.classifier.Classify(
		condition.Raw{Code: current.Code, Text: current.Text},
		condition.Hint{WindSpeedKph: current.WindSpeedKph},
	)

	wind, windUnit := WindForUnits(current.WindSpeedKph, request.Units)
	obs := &Observation{
		Temperature: int(math.Round(current.Temperature)),
		Units:       request.Units,
		WindSpeed:   wind,
		WindUnit:    windUnit,
		Condition:   cond,
		Location:    resolved,
		Astronomy:   uc.fetchAstronomy(ctx, &resolved),
		Degraded:    degraded,
		Provider:    current.Provider,
		ObservedAt:  current.FetchedAt,
	}
	if current.Humidity != nil {
		h := int(math.Round(*current.Humidity))
		obs.Humidity = &h
	}
	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = uc.now()
	}
	return obs, nil
}

// fetchCurrent goes through the observation cache and the provider chain.
// When every provider is unavailable and mock fallback is enabled, placeholder
// conditions are returned and flagged as degraded.
func (uc *UseCase) fetchCurrent(ctx context.Context, loc *location.ResolvedLocation, units ports.Units) (*ports.CurrentWeather, bool, error) {
	cfg := uc.config.GetWeatherConfig()
	key := cacheKey(loc.Latitude, loc.Longitude, units)

	if cfg.EnableCache {
		cached, err := uc.cache.Get(ctx, key)
		if err == nil && cached != nil {
			uc.metrics.RecordCacheResult(cacheName, true)
			uc.logger.Debug("Weather found in cache", ports.F("key", key))
			return cached, false, nil
		}
		uc.metrics.RecordCacheResult(cacheName, false)
	}

	current, err := uc.provider.FetchCurrent(ctx, loc.Latitude, loc.Longitude, units)
	if err == nil {
		if verr := validateCurrent(current); verr != nil {
			err = errors.NewInvalidWeatherPayloadError("weather provider returned unusable data", verr)
		}
	}
	if err != nil {
		if errors.IsInvalidWeatherPayloadError(err) || !cfg.MockFallback || ctx.Err() != nil {
			return nil, false, err
		}
		uc.logger.Warn("All weather providers failed, using placeholder conditions",
			ports.F("location", loc.DisplayName),
			ports.F("error", err))
		return mockWeather(units, uc.now()), true, nil
	}

	if cfg.EnableCache {
		if cacheErr := uc.cache.Set(ctx, key, current, cfg.CacheTTL); cacheErr != nil {
			uc.logger.Warn("Failed to cache weather data",
				ports.F("key", key),
				ports.F("error", cacheErr))
		}
	}
	return current, false, nil
}

func (uc *UseCase) fetchAstronomy(ctx context.Context, loc *location.ResolvedLocation) *clock.AstronomyWindow {
	if uc.astronomy == nil {
		return nil
	}

	astro, err := uc.astronomy.FetchAstronomy(ctx, loc.Latitude, loc.Longitude)
	if err != nil || astro == nil {
		uc.logger.Warn("Astronomy lookup failed, using fixed night window",
			ports.F("provider", uc.astronomy.GetProviderName()),
			ports.F("location", loc.DisplayName),
			ports.F("error", err))
		return nil
	}
	return &clock.AstronomyWindow{Sunrise: astro.Sunrise, Sunset: astro.Sunset}
}

// GetProviderInfo reports the configured weather provider chain
func (uc *UseCase) GetProviderInfo() map[string]interface{} {
	return uc.provider.GetProviderInfo()
}

func cacheKey(lat, lon float64, units ports.Units) string {
	return fmt.Sprintf("weather:%.4f,%.4f:%s", lat, lon, units)
}

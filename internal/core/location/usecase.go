package location

import (
	"context"
	"fmt"
	"strings"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

const cacheName = "location"

// Resolver turns a free-form location string into a ResolvedLocation using
// the static table, the location cache and the geocoding providers in order
type Resolver struct {
	providers []ports.GeocodingProvider
	cache     ports.LocationCache
	config    ports.ConfigProvider
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

type ResolverDependencies struct {
	Providers []ports.GeocodingProvider
	Cache     ports.LocationCache
	Config    ports.ConfigProvider
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
}

func NewResolver(deps ResolverDependencies) (*Resolver, error) {
	for i, p := range deps.Providers {
		if p == nil {
			return nil, errors.NewValidationError(fmt.Sprintf("geocoding provider %d is nil", i))
		}
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
	if deps.Config.GetLocationConfig().EnableCache && deps.Cache == nil {
		return nil, errors.NewValidationError("location cache is required when caching is enabled")
	}

	return &Resolver{
		providers: deps.Providers,
		cache:     deps.Cache,
		config:    deps.Config,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}, nil
}

// Resolve fails with a LocationNotFound error once every source is exhausted
func (r *Resolver) Resolve(ctx context.Context, query string) (*ResolvedLocation, error) {
	trimmed, ok := validation.TrimAndValidate(query)
	if !ok {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	if loc, found := LookupStatic(trimmed); found {
		r.logger.Debug("Location resolved from static table", ports.F("location", trimmed))
		return loc, nil
	}

	cacheKey := r.cacheKey(trimmed)
	if loc := r.fromCache(ctx, cacheKey); loc != nil {
		return loc, nil
	}

	loc, err := r.fromProviders(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	r.storeInCache(ctx, cacheKey, loc)
	return loc, nil
}

// ProviderNames lists the configured geocoders in the order they are tried
func (r *Resolver) ProviderNames() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.GetProviderName())
	}
	return names
}

func (r *Resolver) cacheKey(query string) string {
	return "location:" + NormalizeQuery(query)
}

func (r *Resolver) fromCache(ctx context.Context, key string) *ResolvedLocation {
	if !r.config.GetLocationConfig().EnableCache {
		return nil
	}

	cached, err := r.cache.Get(ctx, key)
	if err != nil || cached == nil {
		r.metrics.RecordCacheResult(cacheName, false)
		if err != nil && !errors.IsNotFoundError(err) {
			r.logger.Warn("Location cache read failed", ports.F("key", key), ports.F("error", err))
		}
		return nil
	}

	r.metrics.RecordCacheResult(cacheName, true)
	r.logger.Debug("Location found in cache", ports.F("key", key))
	return fromPorts(cached)
}

func (r *Resolver) storeInCache(ctx context.Context, key string, loc *ResolvedLocation) {
	cfg := r.config.GetLocationConfig()
	if !cfg.EnableCache {
		return
	}
	if err := r.cache.Set(ctx, key, loc.toPorts(), cfg.CacheTTL); err != nil {
		r.logger.Warn("Failed to cache location", ports.F("key", key), ports.F("error", err))
	}
}

func (r *Resolver) fromProviders(ctx context.Context, query string) (*ResolvedLocation, error) {
	var lastErr error

	for _, provider := range r.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("resolve %q: %w", query, err)
		}

		name := provider.GetProviderName()
		loc, err := r.tryProvider(ctx, provider, query)
		if err != nil {
			outcome := ports.OutcomeFailure
			if errors.IsNotFoundError(err) {
				outcome = ports.OutcomeNotFound
			}
			r.metrics.RecordGeocodingRequest(name, outcome)
			r.logger.Warn("Geocoding provider failed, trying next",
				ports.F("provider", name),
				ports.F("location", query),
				ports.F("error", err))
			lastErr = err
			continue
		}

		r.metrics.RecordGeocodingRequest(name, ports.OutcomeSuccess)
		r.logger.Info("Location resolved",
			ports.F("provider", name),
			ports.F("location", query),
			ports.F("name", loc.DisplayName),
			ports.F("timezone", loc.TimezoneID))
		return loc, nil
	}

	r.logger.Error("All geocoding providers failed",
		ports.F("location", query),
		ports.F("providers", len(r.providers)))
	return nil, errors.NewLocationNotFoundError(
		fmt.Sprintf("could not resolve %q (tried %d providers)", query, len(r.providers)), lastErr)
}

func (r *Resolver) tryProvider(ctx context.Context, provider ports.GeocodingProvider, query string) (*ResolvedLocation, error) {
	result, err := provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.NewNotFoundError("no results from " + provider.GetProviderName())
	}

	loc := &ResolvedLocation{
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		DisplayName: DisplayName(result, query),
		TimezoneID:  strings.TrimSpace(result.TimezoneID),
		Source:      provider.GetProviderName(),
	}
	if loc.TimezoneID == "" {
		loc.TimezoneID = EstimateTimezone(loc.Latitude, loc.Longitude)
		r.logger.Debug("Timezone estimated from coordinates",
			ports.F("provider", loc.Source),
			ports.F("timezone", loc.TimezoneID))
	}

	if err := loc.IsValid(); err != nil {
		return nil, errors.NewProviderUnavailableError("invalid geocoding result", err)
	}
	return loc, nil
}

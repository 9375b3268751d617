package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Location
	GeocodingProviders []GeocodingProvider
	LocationCache      LocationCache

	// Weather
	WeatherProvider   WeatherProviderManager
	AstronomyProvider AstronomyProvider
	ObservationCache  ObservationCache

	// Widgets
	WidgetRepository WidgetRepository

	// Cache
	CacheProvider CacheProvider

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Database       interface{}
}

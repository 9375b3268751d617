package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherwidget.app/pkg/errors"
)

const (
	maxRedisDB                = 15
	maxCacheTTLMinutes        = 1440
	maxLocationCacheTTLMinute = 10080
	maxPortNumber             = 65535
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Database  DatabaseConfig  `split_words:"true"`
	Widget    WidgetConfig    `split_words:"true"`
	Geocoding GeocodingConfig `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Logging   LoggingConfig   `split_words:"true"`
}

type ServerConfig struct {
	Port                   int `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeoutSeconds int `envconfig:"SERVER_SHUTDOWN_TIMEOUT_SECONDS" default:"10"`
}

func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// DatabaseDriver selects the GORM dialector
type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
	DatabaseDriverPostgres DatabaseDriver = "postgres"
)

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"data/widgets.db"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"weatherwidget"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WidgetConfig struct {
	DefaultUnits           string  `envconfig:"WIDGET_DEFAULT_UNITS" default:"F"`
	ClockIntervalSeconds   int     `envconfig:"WIDGET_CLOCK_INTERVAL_SECONDS" default:"60"`
	RefreshIntervalMinutes int     `envconfig:"WIDGET_REFRESH_INTERVAL_MINUTES" default:"15"`
	LoadTimeoutSeconds     int     `envconfig:"WIDGET_LOAD_TIMEOUT_SECONDS" default:"30"`
	WindyThresholdKph      float64 `envconfig:"WIDGET_WINDY_THRESHOLD_KPH" default:"20"`
	MockFallback           bool    `envconfig:"WIDGET_MOCK_FALLBACK" default:"true"`
	// HostTimezone overrides the zone used when a widget's zone is unknown
	HostTimezone string `envconfig:"WIDGET_HOST_TIMEZONE"`
}

type GeocodingConfig struct {
	ProviderOrder        []string `envconfig:"GEOCODING_PROVIDER_ORDER" default:"opencage,nominatim,positionstack"`
	OpenCageKey          string   `envconfig:"OPENCAGE_API_KEY"`
	OpenCageBaseURL      string   `envconfig:"OPENCAGE_API_BASE_URL" default:"https://api.opencagedata.com/geocode/v1"`
	NominatimEnabled     bool     `envconfig:"NOMINATIM_ENABLED" default:"true"`
	NominatimBaseURL     string   `envconfig:"NOMINATIM_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	NominatimUserAgent   string   `envconfig:"NOMINATIM_USER_AGENT" default:"WeatherWidget/1.0"`
	NominatimRPS         float64  `envconfig:"NOMINATIM_REQUESTS_PER_SECOND" default:"1"`
	PositionstackKey     string   `envconfig:"POSITIONSTACK_API_KEY"`
	PositionstackBaseURL string   `envconfig:"POSITIONSTACK_API_BASE_URL" default:"http://api.positionstack.com/v1"`
	ZipcodeDBPath        string   `envconfig:"ZIPCODE_DB_PATH" default:"data/zipcodes.db"`
	ZipcodeCSVURL        string   `envconfig:"ZIPCODE_CSV_URL"`
	EnableCache          bool     `envconfig:"LOCATION_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes      int      `envconfig:"LOCATION_CACHE_TTL_MINUTES" default:"1440"`
}

// UsesZipcode reports whether the offline ZIP provider is in the chain
func (g GeocodingConfig) UsesZipcode() bool {
	for _, name := range g.ProviderOrder {
		if name == "zipcode" {
			return true
		}
	}
	return false
}

type WeatherConfig struct {
	ProviderOrder         []string `envconfig:"WEATHER_PROVIDER_ORDER" default:"openmeteo,weatherapi,openweathermap"`
	OpenMeteoEnabled      bool     `envconfig:"OPENMETEO_ENABLED" default:"true"`
	OpenMeteoBaseURL      string   `envconfig:"OPENMETEO_API_BASE_URL" default:"https://api.open-meteo.com/v1"`
	APIKey                string   `envconfig:"WEATHER_API_KEY"`
	BaseURL               string   `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	OpenWeatherMapKey     string   `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string   `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	AccuWeatherKey        string   `envconfig:"ACCUWEATHER_API_KEY"`
	AccuWeatherBaseURL    string   `envconfig:"ACCUWEATHER_API_BASE_URL" default:"http://dataservice.accuweather.com"`
	AstronomyEnabled      bool     `envconfig:"WEATHER_ASTRONOMY_ENABLED" default:"true"`
	EnableCache           bool     `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes       int      `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LoggingConfig struct {
	Level                  string `envconfig:"LOG_LEVEL" default:"info"`
	Format                 string `envconfig:"LOG_FORMAT" default:"text"`
	ProviderLoggingEnabled bool   `envconfig:"PROVIDER_LOGGING_ENABLED" default:"true"`
	ProviderLogFilePath    string `envconfig:"PROVIDER_LOG_FILE_PATH" default:"logs/providers.log"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Widget.Validate(); err != nil {
		return err
	}
	if err := c.Geocoding.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.ShutdownTimeoutSeconds < 1 {
		return errors.NewConfigurationError("SERVER_SHUTDOWN_TIMEOUT_SECONDS must be at least 1", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DatabaseDriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty", nil)
		}
		return nil
	case DatabaseDriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WidgetConfig) Validate() error {
	units := strings.ToUpper(strings.TrimSpace(w.DefaultUnits))
	if units != "F" && units != "C" {
		return errors.NewConfigurationError("WIDGET_DEFAULT_UNITS must be F or C", nil)
	}
	if w.ClockIntervalSeconds < 1 {
		return errors.NewConfigurationError("WIDGET_CLOCK_INTERVAL_SECONDS must be at least 1", nil)
	}
	if w.RefreshIntervalMinutes < 0 {
		return errors.NewConfigurationError("WIDGET_REFRESH_INTERVAL_MINUTES cannot be negative", nil)
	}
	if w.LoadTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WIDGET_LOAD_TIMEOUT_SECONDS must be at least 1", nil)
	}
	if w.WindyThresholdKph <= 0 {
		return errors.NewConfigurationError("WIDGET_WINDY_THRESHOLD_KPH must be positive", nil)
	}
	if w.HostTimezone != "" {
		if _, err := time.LoadLocation(w.HostTimezone); err != nil {
			return errors.NewConfigurationError("WIDGET_HOST_TIMEZONE is not a known IANA zone", err)
		}
	}
	return nil
}

func (g *GeocodingConfig) Validate() error {
	validProviders := map[string]bool{
		"opencage":      true,
		"nominatim":     true,
		"positionstack": true,
		"zipcode":       true,
	}
	for _, provider := range g.ProviderOrder {
		if !validProviders[provider] {
			return errors.NewConfigurationError(fmt.Sprintf("invalid geocoding provider in order: %s", provider), nil)
		}
	}

	if g.NominatimEnabled && g.NominatimUserAgent == "" {
		return errors.NewConfigurationError("NOMINATIM_USER_AGENT cannot be empty when Nominatim is enabled", nil)
	}
	if g.NominatimRPS <= 0 {
		return errors.NewConfigurationError("NOMINATIM_REQUESTS_PER_SECOND must be positive", nil)
	}
	if g.UsesZipcode() && g.ZipcodeDBPath == "" {
		return errors.NewConfigurationError("ZIPCODE_DB_PATH cannot be empty when zipcode provider is used", nil)
	}
	if g.CacheTTLMinutes < 1 || g.CacheTTLMinutes > maxLocationCacheTTLMinute {
		return errors.NewConfigurationError("LOCATION_CACHE_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if !w.OpenMeteoEnabled && w.APIKey == "" && w.OpenWeatherMapKey == "" && w.AccuWeatherKey == "" {
		return errors.NewConfigurationError("at least one weather provider must be enabled", nil)
	}

	if w.APIKey != "" {
		if w.BaseURL == "" {
			return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty when WEATHER_API_KEY is set", nil)
		}
		if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
			return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
		}
	}

	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}

	validProviders := map[string]bool{
		"openmeteo":      true,
		"weatherapi":     true,
		"openweathermap": true,
		"accuweather":    true,
	}

	for _, provider := range w.ProviderOrder {
		if !validProviders[provider] {
			return errors.NewConfigurationError(fmt.Sprintf("invalid weather provider in order: %s", provider), nil)
		}
	}

	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: text, json", nil)
	}
	if l.ProviderLoggingEnabled && l.ProviderLogFilePath == "" {
		return errors.NewConfigurationError("PROVIDER_LOG_FILE_PATH cannot be empty when provider logging is enabled", nil)
	}
	return nil
}

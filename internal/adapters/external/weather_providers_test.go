package external

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

func TestOpenMeteoProvider_FetchCurrent_Success(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{
		"timezone": "America/Los_Angeles",
		"current_weather": {"temperature": 71.6, "windspeed": 12.4, "weathercode": 61, "is_day": 1},
		"current": {"relative_humidity_2m": 55}
	}`, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "37.9319", q.Get("latitude"))
		assert.Equal(t, "-121.6958", q.Get("longitude"))
		assert.Equal(t, "true", q.Get("current_weather"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Equal(t, "fahrenheit", q.Get("temperature_unit"))
		assert.Equal(t, "kmh", q.Get("windspeed_unit"))
	})

	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	weather, err := provider.FetchCurrent(context.Background(), 37.9319, -121.6958, ports.UnitsFahrenheit)
	require.NoError(t, err)
	require.NotNil(t, weather.Code)
	assert.Equal(t, 61, *weather.Code)
	assert.Empty(t, weather.Text)
	assert.Equal(t, 71.6, weather.Temperature)
	assert.Equal(t, ports.UnitsFahrenheit, weather.Units)
	assert.Equal(t, 12.4, weather.WindSpeedKph)
	require.NotNil(t, weather.Humidity)
	assert.Equal(t, 55.0, *weather.Humidity)
	assert.Equal(t, "America/Los_Angeles", weather.TimezoneID)
	assert.Equal(t, "openmeteo", weather.Provider)
	assert.False(t, weather.FetchedAt.IsZero())
}

func TestOpenMeteoProvider_FetchCurrent_Celsius(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"current_weather": {"temperature": 22, "windspeed": 5, "weathercode": 0}}`,
		func(r *http.Request) {
			assert.Equal(t, "celsius", r.URL.Query().Get("temperature_unit"))
		})
	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	weather, err := provider.FetchCurrent(context.Background(), 0, 0, ports.UnitsCelsius)
	require.NoError(t, err)
	assert.Nil(t, weather.Humidity)
	assert.Equal(t, ports.UnitsCelsius, weather.Units)
}

func TestOpenMeteoProvider_FetchCurrent_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing current_weather", `{"timezone": "UTC"}`},
		{"missing temperature", `{"current_weather": {"windspeed": 5, "weathercode": 0}}`},
		{"missing code", `{"current_weather": {"temperature": 20, "windspeed": 5}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := jsonServer(t, http.StatusOK, tt.body, nil)
			provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

			weather, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsFahrenheit)
			assert.Nil(t, weather)
			assert.True(t, errors.IsInvalidWeatherPayloadError(err))
		})
	}
}

func TestOpenMeteoProvider_FetchCurrent_ServerError(t *testing.T) {
	server := jsonServer(t, http.StatusBadGateway, `{}`, nil)
	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	_, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsFahrenheit)
	assert.True(t, errors.IsProviderUnavailableError(err))
}

func TestWeatherAPIProvider_FetchCurrent(t *testing.T) {
	body := `{
		"location": {"tz_id": "Europe/London"},
		"current": {
			"temp_c": 15.5, "temp_f": 59.9, "wind_kph": 24.1, "humidity": 78,
			"condition": {"text": "Light rain", "code": 1183}
		}
	}`

	tests := []struct {
		name     string
		units    ports.Units
		expected float64
	}{
		{"fahrenheit", ports.UnitsFahrenheit, 59.9},
		{"celsius", ports.UnitsCelsius, 15.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := jsonServer(t, http.StatusOK, body, func(r *http.Request) {
				assert.Equal(t, "/current.json", r.URL.Path)
				assert.Equal(t, "wa-key", r.URL.Query().Get("key"))
				assert.Equal(t, "51.5074,-0.1278", r.URL.Query().Get("q"))
			})
			provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
				APIKey:  "wa-key",
				BaseURL: server.URL,
				Logger:  mocks.NewPermissiveLogger(t),
			})

			weather, err := provider.FetchCurrent(context.Background(), 51.5074, -0.1278, tt.units)
			require.NoError(t, err)
			assert.Nil(t, weather.Code)
			assert.Equal(t, "Light rain", weather.Text)
			assert.Equal(t, tt.expected, weather.Temperature)
			assert.Equal(t, 24.1, weather.WindSpeedKph)
			require.NotNil(t, weather.Humidity)
			assert.Equal(t, 78.0, *weather.Humidity)
			assert.Equal(t, "Europe/London", weather.TimezoneID)
			assert.Equal(t, "weatherapi", weather.Provider)
		})
	}
}

func TestWeatherAPIProvider_FetchCurrent_MissingCurrent(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"location": {"tz_id": "UTC"}}`, nil)
	provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{APIKey: "k", BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	_, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsCelsius)
	assert.True(t, errors.IsInvalidWeatherPayloadError(err))
}

func TestWeatherAPIProvider_FetchCurrent_Forbidden(t *testing.T) {
	server := jsonServer(t, http.StatusForbidden, `{"error": {"code": 2008}}`, nil)
	provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{APIKey: "k", BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	_, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsCelsius)
	assert.True(t, errors.IsProviderUnavailableError(err))
}

func TestWeatherAPIAstronomyProvider(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"astronomy": {"astro": {"sunrise": "06:45 AM", "sunset": "07:30 PM"}}}`,
		func(r *http.Request) {
			assert.Equal(t, "/astronomy.json", r.URL.Path)
		})
	provider := NewWeatherAPIAstronomyProvider(WeatherAPIProviderParams{APIKey: "k", BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	astro, err := provider.FetchAstronomy(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "06:45 AM", astro.Sunrise)
	assert.Equal(t, "07:30 PM", astro.Sunset)
	assert.Equal(t, "weatherapi", provider.GetProviderName())
}

func TestWeatherAPIAstronomyProvider_Incomplete(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"astronomy": {"astro": {"sunrise": "06:45 AM"}}}`, nil)
	provider := NewWeatherAPIAstronomyProvider(WeatherAPIProviderParams{APIKey: "k", BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	_, err := provider.FetchAstronomy(context.Background(), 1, 2)
	assert.True(t, errors.IsInvalidWeatherPayloadError(err))
}

func TestOpenWeatherMapProvider_FetchCurrent(t *testing.T) {
	body := `{
		"main": {"temp": 20, "humidity": 40},
		"weather": [{"main": "Clouds", "description": "overcast clouds"}],
		"wind": {"speed": 10}
	}`

	tests := []struct {
		name     string
		units    ports.Units
		expected float64
	}{
		{"celsius passthrough", ports.UnitsCelsius, 20},
		{"converted to fahrenheit", ports.UnitsFahrenheit, 68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := jsonServer(t, http.StatusOK, body, func(r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "/weather", r.URL.Path)
				assert.Equal(t, "metric", q.Get("units"))
				assert.Equal(t, "owm-key", q.Get("appid"))
				assert.Equal(t, "10.0000", q.Get("lat"))
			})
			provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
				APIKey:  "owm-key",
				BaseURL: server.URL,
				Logger:  mocks.NewPermissiveLogger(t),
			})

			weather, err := provider.FetchCurrent(context.Background(), 10, 20, tt.units)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, weather.Temperature, 1e-9)
			assert.Equal(t, "overcast clouds", weather.Text)
			assert.InDelta(t, 36.0, weather.WindSpeedKph, 1e-9)
			require.NotNil(t, weather.Humidity)
			assert.Equal(t, 40.0, *weather.Humidity)
			assert.Empty(t, weather.TimezoneID)
			assert.Equal(t, "openweathermap", weather.Provider)
		})
	}
}

func TestOpenWeatherMapProvider_FetchCurrent_MainFallback(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"main": {"temp": 1}, "weather": [{"main": "Snow"}]}`, nil)
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "k", BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	weather, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsCelsius)
	require.NoError(t, err)
	assert.Equal(t, "Snow", weather.Text)
	assert.Nil(t, weather.Humidity)
}

func TestOpenWeatherMapProvider_FetchCurrent_NoTemperature(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"weather": [{"description": "clear sky"}]}`, nil)
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "k", BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	_, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsCelsius)
	assert.True(t, errors.IsInvalidWeatherPayloadError(err))
}

func TestAccuWeatherProvider_FetchCurrent(t *testing.T) {
	var geoCalls atomic.Int32
	server := jsonServerMux(t, map[string]string{
		"/locations/v1/cities/geoposition/search": `{"Key": "349727", "TimeZone": {"Name": "America/New_York"}}`,
		"/currentconditions/v1/349727": `[{
			"WeatherText": "Mostly cloudy",
			"Temperature": {"Metric": {"Value": 18.3}, "Imperial": {"Value": 65}},
			"RelativeHumidity": 61,
			"Wind": {"Speed": {"Metric": {"Value": 14.8}}}
		}]`,
	}, func(r *http.Request) {
		assert.Equal(t, "accu-key", r.URL.Query().Get("apikey"))
		if r.URL.Path == "/locations/v1/cities/geoposition/search" {
			geoCalls.Add(1)
			assert.Equal(t, "40.7128,-74.0060", r.URL.Query().Get("q"))
		}
	})

	provider := NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{
		APIKey:  "accu-key",
		BaseURL: server.URL,
		Logger:  mocks.NewPermissiveLogger(t),
	})

	weather, err := provider.FetchCurrent(context.Background(), 40.7128, -74.006, ports.UnitsFahrenheit)
	require.NoError(t, err)
	assert.Equal(t, "Mostly cloudy", weather.Text)
	assert.Equal(t, 65.0, weather.Temperature)
	assert.Equal(t, 14.8, weather.WindSpeedKph)
	assert.Equal(t, "America/New_York", weather.TimezoneID)
	assert.Equal(t, "accuweather", weather.Provider)

	weather, err = provider.FetchCurrent(context.Background(), 40.7128, -74.006, ports.UnitsCelsius)
	require.NoError(t, err)
	assert.Equal(t, 18.3, weather.Temperature)
	assert.Equal(t, int32(1), geoCalls.Load(), "location key is looked up once per coordinate")
}

func TestAccuWeatherProvider_FetchCurrent_NoKey(t *testing.T) {
	provider := NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{Logger: mocks.NewPermissiveLogger(t)})

	_, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsFahrenheit)
	assert.True(t, errors.IsProviderUnavailableError(err))
	assert.Equal(t, "accuweather", provider.GetProviderName())
}

func TestAccuWeatherProvider_FetchCurrent_EmptyConditions(t *testing.T) {
	server := jsonServerMux(t, map[string]string{
		"/locations/v1/cities/geoposition/search": `{"Key": "1"}`,
		"/currentconditions/v1/1":                 `[]`,
	}, nil)
	provider := NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{APIKey: "k", BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	_, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsFahrenheit)
	assert.True(t, errors.IsInvalidWeatherPayloadError(err))
}

func TestAccuWeatherProvider_FetchCurrent_NoLocationKey(t *testing.T) {
	server := jsonServerMux(t, map[string]string{
		"/locations/v1/cities/geoposition/search": `{}`,
	}, nil)
	provider := NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{APIKey: "k", BaseURL: server.URL, Logger: mocks.NewPermissiveLogger(t)})

	_, err := provider.FetchCurrent(context.Background(), 1, 2, ports.UnitsFahrenheit)
	assert.True(t, errors.IsProviderUnavailableError(err))
}

package external

import (
	"context"
	"net/url"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// OpenMeteoProviderAdapter implements WeatherProvider for api.open-meteo.com.
// No key is required; conditions arrive as WMO weather codes.
type OpenMeteoProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenMeteoProviderParams holds parameters for creating Open-Meteo provider
type OpenMeteoProviderParams struct {
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// OpenMeteoResponse represents the forecast response with current weather
type OpenMeteoResponse struct {
	Timezone       string `json:"timezone"`
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
		WindSpeed   float64  `json:"windspeed"`
		WeatherCode *int     `json:"weathercode"`
		IsDay       int      `json:"is_day"`
		Time        string   `json:"time"`
	} `json:"current_weather"`
	Current *struct {
		RelativeHumidity *float64 `json:"relative_humidity_2m"`
	} `json:"current"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1"
	}

	return &OpenMeteoProviderAdapter{
		baseURL: baseURL,
		client:  newHTTPClient(params.Client),
		logger:  params.Logger,
	}
}

// FetchCurrent retrieves current conditions for the coordinates
func (p *OpenMeteoProviderAdapter) FetchCurrent(ctx context.Context, lat, lon float64, units ports.Units) (*ports.CurrentWeather, error) {
	var apiResp OpenMeteoResponse
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/forecast",
		query: url.Values{
			"latitude":         {formatCoord(lat)},
			"longitude":        {formatCoord(lon)},
			"current_weather":  {"true"},
			"current":          {"relative_humidity_2m"},
			"timezone":         {"auto"},
			"temperature_unit": {temperatureUnitParam(units)},
			"windspeed_unit":   {"kmh"},
		},
	}, &apiResp)
	if err != nil {
		return nil, err
	}

	cw := apiResp.CurrentWeather
	if cw == nil {
		return nil, errors.NewInvalidWeatherPayloadError("Open-Meteo response has no current_weather", nil)
	}
	if cw.Temperature == nil || cw.WeatherCode == nil {
		return nil, errors.NewInvalidWeatherPayloadError("Open-Meteo current_weather is incomplete", nil)
	}

	code := *cw.WeatherCode
	weather := &ports.CurrentWeather{
		Code:         &code,
		Temperature:  *cw.Temperature,
		Units:        units,
		WindSpeedKph: cw.WindSpeed,
		TimezoneID:   apiResp.Timezone,
		Provider:     p.GetProviderName(),
		FetchedAt:    time.Now(),
	}
	if apiResp.Current != nil && apiResp.Current.RelativeHumidity != nil {
		h := *apiResp.Current.RelativeHumidity
		weather.Humidity = &h
	}
	return weather, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return "openmeteo"
}

func temperatureUnitParam(units ports.Units) string {
	if units == ports.UnitsCelsius {
		return "celsius"
	}
	return "fahrenheit"
}

func celsiusTo(units ports.Units, c float64) float64 {
	if units == ports.UnitsFahrenheit {
		return c*9/5 + 32
	}
	return c
}

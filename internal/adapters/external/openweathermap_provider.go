package external

import (
	"context"
	"net/url"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const metersPerSecondToKph = 3.6

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// OpenWeatherMapResponse represents the response from OpenWeatherMap API
type OpenWeatherMapResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  newHTTPClient(params.Client),
		logger:  params.Logger,
	}
}

// FetchCurrent retrieves current conditions from OpenWeatherMap. The request is
// always metric; wind arrives in m/s.
func (p *OpenWeatherMapProviderAdapter) FetchCurrent(ctx context.Context, lat, lon float64, units ports.Units) (*ports.CurrentWeather, error) {
	var apiResp OpenWeatherMapResponse
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/weather",
		query: url.Values{
			"lat":   {formatCoord(lat)},
			"lon":   {formatCoord(lon)},
			"appid": {p.apiKey},
			"units": {"metric"},
		},
	}, &apiResp)
	if err != nil {
		return nil, err
	}

	if apiResp.Main == nil || apiResp.Main.Temp == nil {
		return nil, errors.NewInvalidWeatherPayloadError("OpenWeatherMap response has no temperature", nil)
	}

	var text string
	if len(apiResp.Weather) > 0 {
		text = apiResp.Weather[0].Description
		if text == "" {
			text = apiResp.Weather[0].Main
		}
	}

	return &ports.CurrentWeather{
		Text:         text,
		Temperature:  celsiusTo(units, *apiResp.Main.Temp),
		Units:        units,
		WindSpeedKph: apiResp.Wind.Speed * metersPerSecondToKph,
		Humidity:     apiResp.Main.Humidity,
		Provider:     p.GetProviderName(),
		FetchedAt:    time.Now(),
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

package external

import (
	"context"
	"net/url"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const defaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// WeatherAPIProviderAdapter implements WeatherProvider port for WeatherAPI.com
type WeatherAPIProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider
type WeatherAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// WeatherAPIResponse represents the response from WeatherAPI.com
type WeatherAPIResponse struct {
	Location struct {
		TzID string `json:"tz_id"`
	} `json:"location"`
	Current *struct {
		TempC     *float64 `json:"temp_c"`
		TempF     *float64 `json:"temp_f"`
		WindKph   float64  `json:"wind_kph"`
		Humidity  *float64 `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// WeatherAPIAstronomyResponse represents astronomy.json
type WeatherAPIAstronomyResponse struct {
	Astronomy struct {
		Astro struct {
			Sunrise string `json:"sunrise"`
			Sunset  string `json:"sunset"`
		} `json:"astro"`
	} `json:"astronomy"`
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) ports.WeatherProvider {
	return newWeatherAPIProvider(params)
}

func newWeatherAPIProvider(params WeatherAPIProviderParams) *WeatherAPIProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultWeatherAPIBaseURL
	}

	return &WeatherAPIProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  newHTTPClient(params.Client),
		logger:  params.Logger,
	}
}

// FetchCurrent retrieves current conditions from WeatherAPI.com
func (p *WeatherAPIProviderAdapter) FetchCurrent(ctx context.Context, lat, lon float64, units ports.Units) (*ports.CurrentWeather, error) {
	var apiResp WeatherAPIResponse
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/current.json",
		query:    p.query(lat, lon),
	}, &apiResp)
	if err != nil {
		return nil, err
	}

	current := apiResp.Current
	if current == nil {
		return nil, errors.NewInvalidWeatherPayloadError("WeatherAPI response has no current block", nil)
	}

	temp := current.TempF
	if units == ports.UnitsCelsius {
		temp = current.TempC
	}
	if temp == nil {
		return nil, errors.NewInvalidWeatherPayloadError("WeatherAPI response has no temperature", nil)
	}

	return &ports.CurrentWeather{
		Text:         current.Condition.Text,
		Temperature:  *temp,
		Units:        units,
		WindSpeedKph: current.WindKph,
		Humidity:     current.Humidity,
		TimezoneID:   apiResp.Location.TzID,
		Provider:     p.GetProviderName(),
		FetchedAt:    time.Now(),
	}, nil
}

// FetchAstronomy retrieves today's sunrise and sunset in local wall-clock time
func (p *WeatherAPIProviderAdapter) FetchAstronomy(ctx context.Context, lat, lon float64) (*ports.Astronomy, error) {
	var apiResp WeatherAPIAstronomyResponse
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/astronomy.json",
		query:    p.query(lat, lon),
	}, &apiResp)
	if err != nil {
		return nil, err
	}

	astro := apiResp.Astronomy.Astro
	if astro.Sunrise == "" || astro.Sunset == "" {
		return nil, errors.NewInvalidWeatherPayloadError("WeatherAPI astronomy is incomplete", nil)
	}
	return &ports.Astronomy{Sunrise: astro.Sunrise, Sunset: astro.Sunset}, nil
}

func (p *WeatherAPIProviderAdapter) query(lat, lon float64) url.Values {
	return url.Values{
		"key": {p.apiKey},
		"q":   {formatCoord(lat) + "," + formatCoord(lon)},
	}
}

// GetProviderName returns the name of this weather provider
func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return "weatherapi"
}

// NewWeatherAPIAstronomyProvider creates the astronomy provider backed by WeatherAPI.com
func NewWeatherAPIAstronomyProvider(params WeatherAPIProviderParams) ports.AstronomyProvider {
	return newWeatherAPIProvider(params)
}

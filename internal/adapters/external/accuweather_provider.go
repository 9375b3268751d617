package external

import (
	"context"
	"net/url"
	"sync"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// AccuWeatherProviderAdapter implements WeatherProvider port for AccuWeather.
// Current conditions are keyed by an AccuWeather location key, so coordinates
// are first resolved through the geoposition search and the key is remembered.
type AccuWeatherProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger

	mu   sync.RWMutex
	keys map[string]accuLocation
}

type accuLocation struct {
	key      string
	timezone string
}

// AccuWeatherProviderParams holds parameters for creating AccuWeather provider
type AccuWeatherProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// AccuWeatherLocation is the geoposition search result
type AccuWeatherLocation struct {
	Key      string `json:"Key"`
	TimeZone struct {
		Name string `json:"Name"`
	} `json:"TimeZone"`
}

type accuValue struct {
	Value *float64 `json:"Value"`
}

// AccuWeatherConditions is one current conditions entry
type AccuWeatherConditions struct {
	WeatherText string `json:"WeatherText"`
	Temperature struct {
		Metric   accuValue `json:"Metric"`
		Imperial accuValue `json:"Imperial"`
	} `json:"Temperature"`
	RelativeHumidity *float64 `json:"RelativeHumidity"`
	Wind             struct {
		Speed struct {
			Metric accuValue `json:"Metric"`
		} `json:"Speed"`
	} `json:"Wind"`
}

// NewAccuWeatherProviderAdapter creates a new AccuWeather provider adapter
func NewAccuWeatherProviderAdapter(params AccuWeatherProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "http://dataservice.accuweather.com"
	}

	return &AccuWeatherProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  newHTTPClient(params.Client),
		logger:  params.Logger,
		keys:    make(map[string]accuLocation),
	}
}

// FetchCurrent retrieves current conditions from AccuWeather
func (p *AccuWeatherProviderAdapter) FetchCurrent(ctx context.Context, lat, lon float64, units ports.Units) (*ports.CurrentWeather, error) {
	if p.apiKey == "" {
		return nil, errors.NewProviderUnavailableError("AccuWeather API key not configured", nil)
	}

	loc, err := p.locationKey(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	var conditions []AccuWeatherConditions
	err = getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/currentconditions/v1/" + url.PathEscape(loc.key),
		query: url.Values{
			"apikey":  {p.apiKey},
			"details": {"true"},
		},
	}, &conditions)
	if err != nil {
		return nil, err
	}

	if len(conditions) == 0 {
		return nil, errors.NewInvalidWeatherPayloadError("AccuWeather returned no current conditions", nil)
	}

	current := conditions[0]
	temp := current.Temperature.Imperial.Value
	if units == ports.UnitsCelsius {
		temp = current.Temperature.Metric.Value
	}
	if temp == nil {
		return nil, errors.NewInvalidWeatherPayloadError("AccuWeather conditions have no temperature", nil)
	}

	weather := &ports.CurrentWeather{
		Text:        current.WeatherText,
		Temperature: *temp,
		Units:       units,
		Humidity:    current.RelativeHumidity,
		TimezoneID:  loc.timezone,
		Provider:    p.GetProviderName(),
		FetchedAt:   time.Now(),
	}
	if wind := current.Wind.Speed.Metric.Value; wind != nil {
		weather.WindSpeedKph = *wind
	}
	return weather, nil
}

func (p *AccuWeatherProviderAdapter) locationKey(ctx context.Context, lat, lon float64) (accuLocation, error) {
	q := formatCoord(lat) + "," + formatCoord(lon)

	p.mu.RLock()
	loc, ok := p.keys[q]
	p.mu.RUnlock()
	if ok {
		return loc, nil
	}

	var apiResp AccuWeatherLocation
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/locations/v1/cities/geoposition/search",
		query: url.Values{
			"apikey": {p.apiKey},
			"q":      {q},
		},
	}, &apiResp)
	if err != nil {
		return accuLocation{}, err
	}
	if apiResp.Key == "" {
		return accuLocation{}, errors.NewProviderUnavailableError("AccuWeather returned no location key", nil)
	}

	loc = accuLocation{key: apiResp.Key, timezone: apiResp.TimeZone.Name}
	p.mu.Lock()
	p.keys[q] = loc
	p.mu.Unlock()
	return loc, nil
}

// GetProviderName returns the name of this weather provider
func (p *AccuWeatherProviderAdapter) GetProviderName() string {
	return "accuweather"
}

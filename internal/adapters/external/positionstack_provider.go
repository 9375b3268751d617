package external

import (
	"context"
	"net/url"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// PositionstackProviderAdapter implements GeocodingProvider for positionstack.com
type PositionstackProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// PositionstackProviderParams holds parameters for creating Positionstack provider
type PositionstackProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// PositionstackResponse represents the forward geocoding response
type PositionstackResponse struct {
	Data []struct {
		Latitude           float64 `json:"latitude"`
		Longitude          float64 `json:"longitude"`
		Name               string  `json:"name"`
		Label              string  `json:"label"`
		Locality           string  `json:"locality"`
		AdministrativeArea string  `json:"administrative_area"`
		County             string  `json:"county"`
		Region             string  `json:"region"`
		Country            string  `json:"country"`
	} `json:"data"`
}

// NewPositionstackProviderAdapter creates a new Positionstack geocoding adapter
func NewPositionstackProviderAdapter(params PositionstackProviderParams) ports.GeocodingProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "http://api.positionstack.com/v1"
	}

	return &PositionstackProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  newHTTPClient(params.Client),
		logger:  params.Logger,
	}
}

// Search geocodes query and returns the best match
func (p *PositionstackProviderAdapter) Search(ctx context.Context, query string) (*ports.GeocodeResult, error) {
	if query == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	var apiResp PositionstackResponse
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/forward",
		query: url.Values{
			"access_key": {p.apiKey},
			"query":      {query},
			"limit":      {"1"},
		},
	}, &apiResp)
	if err != nil {
		return nil, err
	}

	if len(apiResp.Data) == 0 {
		return nil, errors.NewNotFoundError("no results from Positionstack")
	}

	hit := apiResp.Data[0]
	formatted := hit.Name
	if formatted == "" {
		formatted = hit.Label
	}
	return &ports.GeocodeResult{
		Latitude:  hit.Latitude,
		Longitude: hit.Longitude,
		Components: ports.AddressComponents{
			City:         hit.Locality,
			Municipality: hit.AdministrativeArea,
			County:       hit.County,
			State:        hit.Region,
			Country:      hit.Country,
		},
		FormattedAddress: formatted,
	}, nil
}

// GetProviderName returns the name of this geocoding provider
func (p *PositionstackProviderAdapter) GetProviderName() string {
	return "positionstack"
}

package external

import (
	"context"
	"net/url"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// OpenCageProviderAdapter implements GeocodingProvider for api.opencagedata.com.
// It is the only geocoder that returns an IANA timezone.
type OpenCageProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenCageProviderParams holds parameters for creating OpenCage provider
type OpenCageProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// openCageComponents mirrors the address fields OpenCage returns
type openCageComponents struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	Hamlet       string `json:"hamlet"`
	Suburb       string `json:"suburb"`
	County       string `json:"county"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// OpenCageResponse represents the response from OpenCage geocode API
type OpenCageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Components  openCageComponents `json:"components"`
		Formatted   string             `json:"formatted"`
		Annotations struct {
			Timezone struct {
				Name string `json:"name"`
			} `json:"timezone"`
		} `json:"annotations"`
	} `json:"results"`
}

// NewOpenCageProviderAdapter creates a new OpenCage geocoding adapter
func NewOpenCageProviderAdapter(params OpenCageProviderParams) ports.GeocodingProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.opencagedata.com/geocode/v1"
	}

	return &OpenCageProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  newHTTPClient(params.Client),
		logger:  params.Logger,
	}
}

// Search geocodes query and returns the best match
func (p *OpenCageProviderAdapter) Search(ctx context.Context, query string) (*ports.GeocodeResult, error) {
	if query == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	var apiResp OpenCageResponse
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/json",
		query: url.Values{
			"q":     {query},
			"key":   {p.apiKey},
			"limit": {"1"},
		},
	}, &apiResp)
	if err != nil {
		return nil, err
	}

	if len(apiResp.Results) == 0 {
		return nil, errors.NewNotFoundError("no results from OpenCage")
	}

	result := apiResp.Results[0]
	c := result.Components
	return &ports.GeocodeResult{
		Latitude:  result.Geometry.Lat,
		Longitude: result.Geometry.Lng,
		Components: ports.AddressComponents{
			City:         c.City,
			Town:         c.Town,
			Village:      c.Village,
			Municipality: c.Municipality,
			Hamlet:       c.Hamlet,
			Suburb:       c.Suburb,
			County:       c.County,
			State:        c.State,
			Country:      c.Country,
		},
		FormattedAddress: result.Formatted,
		TimezoneID:       result.Annotations.Timezone.Name,
	}, nil
}

// GetProviderName returns the name of this geocoding provider
func (p *OpenCageProviderAdapter) GetProviderName() string {
	return "opencage"
}

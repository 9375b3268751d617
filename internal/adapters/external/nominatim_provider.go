package external

import (
	"context"
	"net/url"
	"strconv"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// NominatimProviderAdapter implements GeocodingProvider for OpenStreetMap
// Nominatim. The public instance allows one request per second and requires a
// User-Agent; wrap it in a RateLimitedGeocodingProvider.
type NominatimProviderAdapter struct {
	baseURL   string
	userAgent string
	client    HTTPClient
	logger    ports.Logger
}

// NominatimProviderParams holds parameters for creating Nominatim provider
type NominatimProviderParams struct {
	BaseURL   string
	UserAgent string
	Client    HTTPClient
	Logger    ports.Logger
}

// NominatimPlace represents one search hit; coordinates arrive as strings
type NominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     *struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		Hamlet       string `json:"hamlet"`
		Suburb       string `json:"suburb"`
		County       string `json:"county"`
		State        string `json:"state"`
		Country      string `json:"country"`
	} `json:"address"`
}

// NewNominatimProviderAdapter creates a new Nominatim geocoding adapter
func NewNominatimProviderAdapter(params NominatimProviderParams) ports.GeocodingProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	userAgent := params.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &NominatimProviderAdapter{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    newHTTPClient(params.Client),
		logger:    params.Logger,
	}
}

// Search geocodes query and returns the best match
func (p *NominatimProviderAdapter) Search(ctx context.Context, query string) (*ports.GeocodeResult, error) {
	if query == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	var places []NominatimPlace
	err := getJSON(ctx, p.client, p.logger, jsonRequest{
		provider: p.GetProviderName(),
		endpoint: p.baseURL + "/search",
		query: url.Values{
			"q":              {query},
			"format":         {"json"},
			"limit":          {"1"},
			"addressdetails": {"1"},
		},
		headers: map[string]string{"User-Agent": p.userAgent},
	}, &places)
	if err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, errors.NewNotFoundError("no results from Nominatim")
	}

	place := places[0]
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return nil, errors.NewProviderUnavailableError("invalid latitude from Nominatim", err)
	}
	lon, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return nil, errors.NewProviderUnavailableError("invalid longitude from Nominatim", err)
	}

	result := &ports.GeocodeResult{
		Latitude:         lat,
		Longitude:        lon,
		FormattedAddress: place.DisplayName,
	}
	if a := place.Address; a != nil {
		result.Components = ports.AddressComponents{
			City:         a.City,
			Town:         a.Town,
			Village:      a.Village,
			Municipality: a.Municipality,
			Hamlet:       a.Hamlet,
			Suburb:       a.Suburb,
			County:       a.County,
			State:        a.State,
			Country:      a.Country,
		}
	}
	return result, nil
}

// GetProviderName returns the name of this geocoding provider
func (p *NominatimProviderAdapter) GetProviderName() string {
	return "nominatim"
}

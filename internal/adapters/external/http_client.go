// Package external provides adapters for external services: geocoders,
// weather and astronomy providers, and the caches in front of them.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	// DefaultUserAgent identifies this service to public APIs that require it
	DefaultUserAgent = "WeatherWidget/1.0"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(client HTTPClient) HTTPClient {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// jsonRequest describes one GET call to a provider API
type jsonRequest struct {
	provider string
	endpoint string
	query    url.Values
	headers  map[string]string
}

// getJSON performs the request and decodes a 200 response into out. A 404 is
// NotFound; any other failure is ProviderUnavailable.
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, r jsonRequest, out interface{}) error {
	target := r.endpoint
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.NewProviderUnavailableError("failed to build "+r.provider+" request", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewProviderUnavailableError("failed to call "+r.provider, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && logger != nil {
			logger.Warn("Failed to close response body",
				ports.F("provider", r.provider),
				ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusNotFound {
			return errors.NewNotFoundError(r.provider + " returned no match")
		}
		return errors.NewProviderUnavailableError(
			fmt.Sprintf("%s returned status %d", r.provider, resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewProviderUnavailableError("failed to decode "+r.provider+" response", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

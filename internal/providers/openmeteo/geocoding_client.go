package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Berlin&count=1&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultLanguage  = "en"
)

type GeocodingClient struct {
	transport *transport
	baseURL   string
	language  string
	logger    *slog.Logger
}

func NewGeocodingClient(logger *slog.Logger, opts Options) *GeocodingClient {
	logger = logger.With("component", "openmeteo-geocoding-client")
	return &GeocodingClient{
		transport: newTransport("openmeteo-geocoding", opts, logger),
		baseURL:   baseGeocodingURL,
		language:  defaultLanguage,
		logger:    logger,
	}
}

// WithBaseURL points the client at a different endpoint.
func (c *GeocodingClient) WithBaseURL(baseURL string) *GeocodingClient {
	c.baseURL = baseURL
	return c
}

// WithLanguage sets the language used for translated place names.
func (c *GeocodingClient) WithLanguage(language string) *GeocodingClient {
	if language != "" {
		c.language = language
	}
	return c
}

// Search looks up places matching name, returning at most count results
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*SearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", c.language)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp SearchAPIResponse
	if err := c.transport.getJSON(ctx, u, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("geocoding search complete", "name", name, "results", len(apiResp.Results))

	return &apiResp, nil
}

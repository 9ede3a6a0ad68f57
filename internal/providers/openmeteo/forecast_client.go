package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=32.81&longitude=35&hourly=relative_humidity_2m,cloud_cover&daily=temperature_2m_max,temperature_2m_min,uv_index_max&timezone=auto&forecast_days=3
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var (
	hourlyVars = []string{
		"relative_humidity_2m",
		"cloud_cover",
	}

	dailyVars = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"uv_index_max",
	}
)

type ForecastClient struct {
	transport *transport
	baseURL   string
	logger    *slog.Logger
}

func NewForecastClient(logger *slog.Logger, opts Options) *ForecastClient {
	logger = logger.With("component", "openmeteo-forecast-client")
	return &ForecastClient{
		transport: newTransport("openmeteo-forecast", opts, logger),
		baseURL:   baseForecastURL,
		logger:    logger,
	}
}

// WithBaseURL points the client at a different endpoint.
func (c *ForecastClient) WithBaseURL(baseURL string) *ForecastClient {
	c.baseURL = baseURL
	return c
}

// GetForecast fetches the hourly humidity/cloud cover and daily temperature/UV
// series for the given coordinates. The timezone is resolved by the API.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

	var apiResp ForecastAPIResponse
	if err := c.transport.getJSON(ctx, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

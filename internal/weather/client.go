package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"weather-app/internal/location"
	"weather-app/internal/providers/openmeteo"
	"weather-app/internal/types"
)

// ForecastProvider fetches the raw forecast for a coordinate pair
type ForecastProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

// GeoForecastClient resolves a location name and fetches its forecast.
type GeoForecastClient interface {
	ResolveAndFetch(ctx context.Context, query LocationQuery) (*types.Place, *openmeteo.ForecastAPIResponse, error)
}

type geoForecastClient struct {
	locationService  location.Service
	forecastProvider ForecastProvider
	logger           *slog.Logger
}

// NewGeoForecastClient composes a location service and a forecast provider.
func NewGeoForecastClient(locationService location.Service, forecastProvider ForecastProvider, logger *slog.Logger) GeoForecastClient {
	return &geoForecastClient{
		locationService:  locationService,
		forecastProvider: forecastProvider,
		logger:           logger.With("component", "geo-forecast-client"),
	}
}

// ResolveAndFetch geocodes first and then fetches the forecast for the match.
// The forecast body is only checked for being JSON here; its shape is checked by Extract.
func (c *geoForecastClient) ResolveAndFetch(ctx context.Context, query LocationQuery) (*types.Place, *openmeteo.ForecastAPIResponse, error) {
	place, err := c.locationService.Resolve(ctx, query.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLocationNotFound, err)
	}

	resp, err := c.forecastProvider.GetForecast(
		ctx,
		place.Coordinates.Latitude,
		place.Coordinates.Longitude,
		query.RequestedDays,
	)
	if err != nil {
		c.logger.Error("failed to get forecast from provider",
			"city", place.Location.City,
			"latitude", place.Coordinates.Latitude,
			"longitude", place.Coordinates.Longitude,
			"error", err,
		)
		if errors.Is(err, openmeteo.ErrDecode) {
			return nil, nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrForecastFetch, err)
	}

	return place, resp, nil
}

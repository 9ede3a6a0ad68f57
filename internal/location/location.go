package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"weather-app/internal/providers/openmeteo"
	"weather-app/internal/types"
)

var (
	// ErrEmptyName is returned when the query has nothing to search for.
	ErrEmptyName = errors.New("location name is empty")
	// ErrNotFound is returned when geocoding yields no usable match.
	ErrNotFound = errors.New("location not found")
)

// Service resolves free-text place names to coordinates
type Service interface {
	// Resolve returns the single best match for name
	Resolve(ctx context.Context, name string) (*types.Place, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.SearchAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service backed by the Open-Meteo geocoding API
func NewLocationService(logger *slog.Logger, opts openmeteo.Options, geocodingURL, language string) Service {
	client := openmeteo.NewGeocodingClient(logger, opts).WithLanguage(language)
	if geocodingURL != "" {
		client.WithBaseURL(geocodingURL)
	}
	return NewLocationServiceWithProvider(client, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider.
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

// Resolve asks the provider for exactly one match and translates it.
// Transport failures and empty result sets both surface as ErrNotFound.
func (s *locationService) Resolve(ctx context.Context, name string) (*types.Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	resp, err := s.geocodeProvider.Search(ctx, name, 1)
	if err != nil {
		s.logger.Error("geocoding request failed", "name", name, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}

	if resp == nil || len(resp.Results) == 0 {
		s.logger.Info("geocoding returned no results", "name", name)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	place, err := translatePlace(resp.Results[0])
	if err != nil {
		s.logger.Warn("geocoding result incomplete", "name", name, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}

	s.logger.Debug("resolved location",
		"name", name,
		"city", place.Location.City,
		"country", place.Location.Country,
		"coords", place.Coordinates.String(),
	)

	return place, nil
}

// translatePlace converts a geocoding result to the domain Place type
func translatePlace(r openmeteo.SearchResult) (*types.Place, error) {
	switch {
	case r.Name == "":
		return nil, errors.New("result has no name")
	case r.Country == "":
		return nil, errors.New("result has no country")
	case r.Latitude == nil || r.Longitude == nil:
		return nil, errors.New("result has no coordinates")
	}

	coords := types.NewCoords(*r.Latitude, *r.Longitude)
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	return &types.Place{
		Coordinates: coords,
		Location: types.LocationInfo{
			City:        r.Name,
			Region:      r.Admin1,
			Country:     r.Country,
			CountryCode: r.CountryCode,
		},
		Timezone: r.Timezone,
	}, nil
}

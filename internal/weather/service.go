package weather

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"weather-app/internal/config"
	"weather-app/internal/location"
	"weather-app/internal/providers/openmeteo"
)

// HistorySink receives the result of every successful query.
type HistorySink interface {
	Append(ctx context.Context, location string, data []PresentationRecord) error
}

type Service interface {
	// GetWeather resolves location and returns one record per forecast day
	GetWeather(ctx context.Context, location string, days int) ([]PresentationRecord, error)
}

type weatherService struct {
	client   GeoForecastClient
	history  HistorySink
	validate *validator.Validate
	maxDays  int
	logger   *slog.Logger
}

// NewWeatherService wires the Open-Meteo geocoding and forecast clients from cfg.
// history may be nil.
func NewWeatherService(cfg *config.Config, history HistorySink, logger *slog.Logger) Service {
	opts := openmeteo.Options{
		Timeout:   cfg.OpenMeteo.Timeout,
		RateLimit: cfg.OpenMeteo.RateLimit,
		Burst:     cfg.OpenMeteo.Burst,
	}

	locationSvc := location.NewLocationService(logger, opts, cfg.OpenMeteo.GeocodingURL, cfg.OpenMeteo.Language)

	forecastClient := openmeteo.NewForecastClient(logger, opts)
	if cfg.OpenMeteo.ForecastURL != "" {
		forecastClient.WithBaseURL(cfg.OpenMeteo.ForecastURL)
	}

	client := NewGeoForecastClient(locationSvc, forecastClient, logger)
	return NewWeatherServiceWithClient(client, history, cfg.App.MaxForecastDays, logger)
}

// NewWeatherServiceWithClient creates a weather service with a custom client.
// This is useful for testing with mock providers
func NewWeatherServiceWithClient(client GeoForecastClient, history HistorySink, maxDays int, logger *slog.Logger) Service {
	if maxDays <= 0 || maxDays > MaxForecastDays {
		maxDays = MaxForecastDays
	}
	return &weatherService{
		client:   client,
		history:  history,
		validate: validator.New(),
		maxDays:  maxDays,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetWeather(ctx context.Context, location string, days int) ([]PresentationRecord, error) {
	query := NewLocationQuery(location, days)
	if err := s.validateQuery(query); err != nil {
		s.logger.Info("rejected weather query", "location", location, "days", days, "error", err)
		return nil, err
	}

	records, err := s.run(ctx, query)
	if err != nil {
		s.logger.Error("weather query failed",
			"location", query.Name,
			"days", query.RequestedDays,
			"kind", ErrorKind(err),
			"error", err,
		)
		return nil, err
	}

	s.logger.Info("successfully received weather data", "location", query.Name, "days", len(records))

	s.recordHistory(ctx, query.Name, records)

	return records, nil
}

// run is the pipeline: resolve and fetch, extract, aggregate, format.
func (s *weatherService) run(ctx context.Context, query LocationQuery) ([]PresentationRecord, error) {
	place, raw, err := s.client.ResolveAndFetch(ctx, query)
	if err != nil {
		return nil, err
	}

	series, err := Extract(raw)
	if err != nil {
		return nil, err
	}

	days, err := Aggregate(query.RequestedDays, series)
	if err != nil {
		return nil, err
	}

	return Format(days, place.Location.Country, place.Location.City), nil
}

func (s *weatherService) validateQuery(query LocationQuery) error {
	if err := s.validate.Struct(query); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	if query.RequestedDays > s.maxDays {
		return fmt.Errorf("%w: days must be between 1 and %d, got %d", ErrInvalidQuery, s.maxDays, query.RequestedDays)
	}
	return nil
}

// recordHistory never fails the query; sink errors are only logged.
func (s *weatherService) recordHistory(ctx context.Context, location string, records []PresentationRecord) {
	if s.history == nil {
		return
	}
	if err := s.history.Append(context.WithoutCancel(ctx), location, records); err != nil {
		s.logger.Error("failed to save to history", "location", location, "error", err)
	}
}

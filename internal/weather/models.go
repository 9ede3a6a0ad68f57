package weather

import "strings"

const (
	// HoursPerDay is the number of hourly samples the forecast API returns per day.
	HoursPerDay = 24
	// MaxForecastDays is the upper bound accepted by the forecast API.
	MaxForecastDays = 16
)

// LocationQuery is one request for a forecast.
type LocationQuery struct {
	Name          string `validate:"required"`
	RequestedDays int    `validate:"gte=1,lte=16"`
}

// NewLocationQuery trims the name; validation happens in the service.
func NewLocationQuery(name string, days int) LocationQuery {
	return LocationQuery{
		Name:          strings.TrimSpace(name),
		RequestedDays: days,
	}
}

// ForecastSeries holds the six raw series the pipeline works from.
// Hourly series carry HoursPerDay values per returned day.
type ForecastSeries struct {
	HourlyHumidity   []float64
	HourlyCloudCover []float64
	DailyMaxTemp     []float64
	DailyMinTemp     []float64
	DailyUvIndex     []float64
	DailyDate        []string
}

// DayRecord is one day's aggregated weather.
type DayRecord struct {
	Date        string
	MaxTemp     float64
	MinTemp     float64
	HumidityAvg float64
	UvIndex     float64
	CloudCover  float64
}

// PresentationRecord is a DayRecord tagged with the resolved place, in the
// shape rendered by the page and stored in the history log.
type PresentationRecord struct {
	Country    string  `json:"country"`
	City       string  `json:"city"`
	Time       string  `json:"time"`
	MaxTemp    float64 `json:"max_temp"`
	MinTemp    float64 `json:"min_temp"`
	Humidity   float64 `json:"humidity"`
	UvIndex    float64 `json:"uv_index"`
	CloudCover float64 `json:"cloud_cover"`
}

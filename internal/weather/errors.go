package weather

import "errors"

var (
	// ErrLocationNotFound is returned when geocoding yields no match or the
	// geocoding call itself fails. The two cases are deliberately not told apart.
	ErrLocationNotFound = errors.New("location not found")
	// ErrForecastFetch is returned when the forecast call fails in transport.
	ErrForecastFetch = errors.New("failed to fetch forecast")
	// ErrMalformedResponse is returned when a successful response lacks expected structure.
	ErrMalformedResponse = errors.New("malformed forecast response")
	// ErrInsufficientData is returned when the requested day count exceeds the returned series.
	ErrInsufficientData = errors.New("insufficient forecast data")
	// ErrInvalidQuery is returned for an empty location or an out-of-range day count.
	ErrInvalidQuery = errors.New("invalid weather query")
)

// Error kind labels, used in logs and API responses
const (
	KindLocationNotFound  = "location_not_found"
	KindForecastFetch     = "forecast_fetch"
	KindMalformedResponse = "malformed_response"
	KindInsufficientData  = "insufficient_data"
	KindInvalidQuery      = "invalid_query"
	KindUnknown           = "unknown"
)

// ErrorKind maps err to its kind label.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidQuery):
		return KindInvalidQuery
	case errors.Is(err, ErrLocationNotFound):
		return KindLocationNotFound
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrForecastFetch):
		return KindForecastFetch
	case errors.Is(err, ErrInsufficientData):
		return KindInsufficientData
	default:
		return KindUnknown
	}
}

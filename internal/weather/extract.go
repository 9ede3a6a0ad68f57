package weather

import (
	"fmt"

	"weather-app/internal/providers/openmeteo"
)

// Extract projects the six series out of a raw forecast response.
func Extract(raw *openmeteo.ForecastAPIResponse) (ForecastSeries, error) {
	if raw == nil {
		return ForecastSeries{}, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}
	if raw.Hourly == nil {
		return ForecastSeries{}, fmt.Errorf("%w: missing key %q", ErrMalformedResponse, "hourly")
	}
	if raw.Daily == nil {
		return ForecastSeries{}, fmt.Errorf("%w: missing key %q", ErrMalformedResponse, "daily")
	}

	required := []struct {
		key     string
		present bool
	}{
		{"hourly.relative_humidity_2m", raw.Hourly.RelativeHumidity2M != nil},
		{"hourly.cloud_cover", raw.Hourly.CloudCover != nil},
		{"daily.time", raw.Daily.Time != nil},
		{"daily.temperature_2m_max", raw.Daily.Temperature2MMax != nil},
		{"daily.temperature_2m_min", raw.Daily.Temperature2MMin != nil},
		{"daily.uv_index_max", raw.Daily.UvIndexMax != nil},
	}
	for _, r := range required {
		if !r.present {
			return ForecastSeries{}, fmt.Errorf("%w: missing key %q", ErrMalformedResponse, r.key)
		}
	}

	var series ForecastSeries
	var err error
	if series.HourlyHumidity, err = values("hourly.relative_humidity_2m", raw.Hourly.RelativeHumidity2M); err != nil {
		return ForecastSeries{}, err
	}
	if series.HourlyCloudCover, err = values("hourly.cloud_cover", raw.Hourly.CloudCover); err != nil {
		return ForecastSeries{}, err
	}
	if series.DailyMaxTemp, err = values("daily.temperature_2m_max", raw.Daily.Temperature2MMax); err != nil {
		return ForecastSeries{}, err
	}
	if series.DailyMinTemp, err = values("daily.temperature_2m_min", raw.Daily.Temperature2MMin); err != nil {
		return ForecastSeries{}, err
	}
	if series.DailyUvIndex, err = values("daily.uv_index_max", raw.Daily.UvIndexMax); err != nil {
		return ForecastSeries{}, err
	}
	series.DailyDate = raw.Daily.Time

	return series, nil
}

// values dereferences a decoded series. The request asks for exactly the days
// the caller wants, so every returned value is needed and a null is rejected
// rather than read as zero.
func values(key string, in []*float64) ([]float64, error) {
	out := make([]float64, len(in))
	for i, v := range in {
		if v == nil {
			return nil, fmt.Errorf("%w: null at %s[%d]", ErrMalformedResponse, key, i)
		}
		out[i] = *v
	}
	return out, nil
}

package weather

import (
	"fmt"
	"math"
)

// Aggregate builds one DayRecord per requested day.
//
// Humidity is the mean of the day's 24 hourly values. Cloud cover is the
// hourly value at the day's index, not a daily aggregate; the page has always
// shown that value and it is kept as is.
func Aggregate(days int, series ForecastSeries) ([]DayRecord, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: negative day count %d", ErrInvalidQuery, days)
	}

	if need := days * HoursPerDay; len(series.HourlyHumidity) < need {
		return nil, fmt.Errorf("%w: %d days need %d hourly humidity values, got %d",
			ErrInsufficientData, days, need, len(series.HourlyHumidity))
	}

	lengths := []struct {
		name string
		n    int
	}{
		{"hourly cloud cover", len(series.HourlyCloudCover)},
		{"daily max temperature", len(series.DailyMaxTemp)},
		{"daily min temperature", len(series.DailyMinTemp)},
		{"daily uv index", len(series.DailyUvIndex)},
		{"daily date", len(series.DailyDate)},
	}
	for _, l := range lengths {
		if l.n < days {
			return nil, fmt.Errorf("%w: %d days requested, %s has %d values",
				ErrInsufficientData, days, l.name, l.n)
		}
	}

	records := make([]DayRecord, 0, days)
	cursor := 0
	for i := 0; i < days; i++ {
		records = append(records, DayRecord{
			Date:        series.DailyDate[i],
			MaxTemp:     series.DailyMaxTemp[i],
			MinTemp:     series.DailyMinTemp[i],
			UvIndex:     series.DailyUvIndex[i],
			CloudCover:  series.HourlyCloudCover[i],
			HumidityAvg: meanRounded(series.HourlyHumidity[cursor : cursor+HoursPerDay]),
		})
		cursor += HoursPerDay
	}

	return records, nil
}

// meanRounded returns the arithmetic mean of values rounded half away from
// zero to two decimal places.
func meanRounded(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return roundTo(sum/float64(len(values)), 2)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

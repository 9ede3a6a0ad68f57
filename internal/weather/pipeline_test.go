package weather

import (
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"weather-app/internal/providers/openmeteo"
)

var haifaHumidity = []float64{79, 84, 85, 85, 86, 86, 81, 78, 70, 57, 49, 42, 40, 38, 34, 35, 56, 63, 68, 69, 71, 72, 76, 60}

func loadForecast(t *testing.T, name string) *openmeteo.ForecastAPIResponse {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return decodeForecast(t, string(b))
}

func decodeForecast(t *testing.T, body string) *openmeteo.ForecastAPIResponse {
	t.Helper()
	var resp openmeteo.ForecastAPIResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return &resp
}

// seriesForDays builds a consistent series where day i has humidity 50+i
// every hour and cloud cover 10*i at hourly index i.
func seriesForDays(days int) ForecastSeries {
	s := ForecastSeries{}
	for d := 0; d < days; d++ {
		for h := 0; h < HoursPerDay; h++ {
			s.HourlyHumidity = append(s.HourlyHumidity, float64(50+d))
			s.HourlyCloudCover = append(s.HourlyCloudCover, float64(10*len(s.HourlyCloudCover)))
		}
		s.DailyMaxTemp = append(s.DailyMaxTemp, float64(20+d))
		s.DailyMinTemp = append(s.DailyMinTemp, float64(10+d))
		s.DailyUvIndex = append(s.DailyUvIndex, float64(d)+0.5)
		s.DailyDate = append(s.DailyDate, "2025-01-2"+string(rune('1'+d)))
	}
	return s
}

func TestMeanRounded(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{
			name:     "haifa hourly humidity",
			input:    haifaHumidity,
			expected: 65.17,
		},
		{
			name:     "constant",
			input:    []float64{40, 40, 40},
			expected: 40,
		},
		{
			name:     "rounds half away from zero",
			input:    []float64{0.125, 0.125},
			expected: 0.13,
		},
		{
			name:     "thirds",
			input:    []float64{1, 1, 2},
			expected: 1.33,
		},
		{
			name:     "empty slice",
			input:    []float64{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := meanRounded(tt.input)
			if result != tt.expected {
				t.Errorf("meanRounded(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	series, err := Extract(loadForecast(t, "haifa_forecast_1day.json"))
	if err != nil {
		t.Fatalf("Extract() unexpected error = %v", err)
	}

	if !reflect.DeepEqual(series.HourlyHumidity, haifaHumidity) {
		t.Errorf("HourlyHumidity = %v", series.HourlyHumidity)
	}
	if len(series.HourlyCloudCover) != 24 || series.HourlyCloudCover[0] != 42 {
		t.Errorf("HourlyCloudCover = %v", series.HourlyCloudCover)
	}
	if !reflect.DeepEqual(series.DailyDate, []string{"2025-01-21"}) {
		t.Errorf("DailyDate = %v", series.DailyDate)
	}
	if !reflect.DeepEqual(series.DailyMaxTemp, []float64{21.3}) {
		t.Errorf("DailyMaxTemp = %v", series.DailyMaxTemp)
	}
	if !reflect.DeepEqual(series.DailyMinTemp, []float64{12.1}) {
		t.Errorf("DailyMinTemp = %v", series.DailyMinTemp)
	}
	if !reflect.DeepEqual(series.DailyUvIndex, []float64{4.2}) {
		t.Errorf("DailyUvIndex = %v", series.DailyUvIndex)
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse
	}{
		{"nil response", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse { return nil }},
		{"missing hourly", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse { r.Hourly = nil; return r }},
		{"missing daily", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse { r.Daily = nil; return r }},
		{"missing humidity", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Hourly.RelativeHumidity2M = nil
			return r
		}},
		{"missing cloud cover", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Hourly.CloudCover = nil
			return r
		}},
		{"missing uv index", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Daily.UvIndexMax = nil
			return r
		}},
		{"missing dates", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Daily.Time = nil
			return r
		}},
		{"null max temperature", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Daily.Temperature2MMax[0] = nil
			return r
		}},
		{"null min temperature", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Daily.Temperature2MMin[0] = nil
			return r
		}},
		{"null uv index", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Daily.UvIndexMax[0] = nil
			return r
		}},
		{"null cloud cover sample", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Hourly.CloudCover[0] = nil
			return r
		}},
		{"null humidity sample", func(r *openmeteo.ForecastAPIResponse) *openmeteo.ForecastAPIResponse {
			r.Hourly.RelativeHumidity2M[5] = nil
			return r
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.mutate(loadForecast(t, "haifa_forecast_1day.json"))
			_, err := Extract(raw)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("Extract() error = %v, want %v", err, ErrMalformedResponse)
			}
		})
	}
}

func TestExtract_NullsInDecodedBody(t *testing.T) {
	hourly := `[` + strings.TrimSuffix(strings.Repeat("50,", HoursPerDay), ",") + `]`
	body := `{
		"hourly": {"relative_humidity_2m": ` + hourly + `, "cloud_cover": [null` + strings.Repeat(",10", HoursPerDay-1) + `]},
		"daily": {
			"time": ["2025-01-21"],
			"temperature_2m_max": [null],
			"temperature_2m_min": [null],
			"uv_index_max": [null]
		}
	}`

	series, err := Extract(decodeForecast(t, body))
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("Extract() error = %v, want %v", err, ErrMalformedResponse)
	}
	if series.DailyMaxTemp != nil || series.HourlyCloudCover != nil {
		t.Errorf("expected empty series on error, got %+v", series)
	}
}

func TestExtract_PartialDayLeftToAggregate(t *testing.T) {
	raw := loadForecast(t, "haifa_forecast_1day.json")
	raw.Hourly.RelativeHumidity2M = raw.Hourly.RelativeHumidity2M[:23]

	series, err := Extract(raw)
	if err != nil {
		t.Fatalf("Extract() unexpected error = %v", err)
	}

	if _, err := Aggregate(1, series); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Aggregate() error = %v, want %v", err, ErrInsufficientData)
	}
}

func TestAggregate(t *testing.T) {
	series, err := Extract(loadForecast(t, "haifa_forecast_1day.json"))
	if err != nil {
		t.Fatalf("Extract() unexpected error = %v", err)
	}

	days, err := Aggregate(1, series)
	if err != nil {
		t.Fatalf("Aggregate() unexpected error = %v", err)
	}

	want := []DayRecord{{
		Date:        "2025-01-21",
		MaxTemp:     21.3,
		MinTemp:     12.1,
		HumidityAvg: 65.17,
		UvIndex:     4.2,
		CloudCover:  42,
	}}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("Aggregate() = %+v, want %+v", days, want)
	}
}

func TestAggregate_MultipleDays(t *testing.T) {
	series := seriesForDays(3)

	days, err := Aggregate(3, series)
	if err != nil {
		t.Fatalf("Aggregate() unexpected error = %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("len(days) = %d, want 3", len(days))
	}

	for i, d := range days {
		if d.HumidityAvg != float64(50+i) {
			t.Errorf("day %d HumidityAvg = %v, want %v", i, d.HumidityAvg, 50+i)
		}
		if d.MaxTemp != float64(20+i) || d.MinTemp != float64(10+i) {
			t.Errorf("day %d temps = %v/%v", i, d.MaxTemp, d.MinTemp)
		}
		// Cloud cover is sampled from the hourly series at the day index.
		if d.CloudCover != float64(10*i) {
			t.Errorf("day %d CloudCover = %v, want %v", i, d.CloudCover, 10*i)
		}
		if d.Date != series.DailyDate[i] {
			t.Errorf("day %d Date = %v, want %v", i, d.Date, series.DailyDate[i])
		}
	}
}

func TestAggregate_FewerDaysThanReturned(t *testing.T) {
	days, err := Aggregate(2, seriesForDays(5))
	if err != nil {
		t.Fatalf("Aggregate() unexpected error = %v", err)
	}
	if len(days) != 2 {
		t.Errorf("len(days) = %d, want 2", len(days))
	}
}

func TestAggregate_ZeroDays(t *testing.T) {
	days, err := Aggregate(0, seriesForDays(1))
	if err != nil {
		t.Fatalf("Aggregate() unexpected error = %v", err)
	}
	if len(days) != 0 {
		t.Errorf("len(days) = %d, want 0", len(days))
	}
}

func TestAggregate_InsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		days   int
		series func() ForecastSeries
	}{
		{
			name: "two days against one day of hourly humidity",
			days: 2,
			series: func() ForecastSeries {
				s := seriesForDays(2)
				s.HourlyHumidity = s.HourlyHumidity[:24]
				return s
			},
		},
		{
			name: "short daily max temperature",
			days: 2,
			series: func() ForecastSeries {
				s := seriesForDays(2)
				s.DailyMaxTemp = s.DailyMaxTemp[:1]
				return s
			},
		},
		{
			name: "short daily dates",
			days: 3,
			series: func() ForecastSeries {
				s := seriesForDays(3)
				s.DailyDate = s.DailyDate[:2]
				return s
			},
		},
		{
			name: "short cloud cover",
			days: 2,
			series: func() ForecastSeries {
				s := seriesForDays(2)
				s.HourlyCloudCover = s.HourlyCloudCover[:1]
				return s
			},
		},
		{
			name:   "more days than returned",
			days:   7,
			series: func() ForecastSeries { return seriesForDays(3) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(tt.days, tt.series())
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("Aggregate() error = %v, want %v", err, ErrInsufficientData)
			}
		})
	}
}

func TestAggregate_NegativeDays(t *testing.T) {
	if _, err := Aggregate(-1, seriesForDays(1)); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("Aggregate(-1) error = %v, want %v", err, ErrInvalidQuery)
	}
}

func TestFormat(t *testing.T) {
	days := []DayRecord{
		{Date: "2025-01-21", MaxTemp: 21.3, MinTemp: 12.1, HumidityAvg: 65.17, UvIndex: 4.2, CloudCover: 42},
		{Date: "2025-01-22", MaxTemp: 19, MinTemp: 11, HumidityAvg: 70, UvIndex: 3, CloudCover: 20},
	}

	got := Format(days, "Israel", "Haifa")

	want := []PresentationRecord{
		{Country: "Israel", City: "Haifa", Time: "2025-01-21", MaxTemp: 21.3, MinTemp: 12.1, Humidity: 65.17, UvIndex: 4.2, CloudCover: 42},
		{Country: "Israel", City: "Haifa", Time: "2025-01-22", MaxTemp: 19, MinTemp: 11, Humidity: 70, UvIndex: 3, CloudCover: 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Format() = %+v, want %+v", got, want)
	}
}

func TestFormat_Empty(t *testing.T) {
	got := Format([]DayRecord{}, "Israel", "Haifa")
	if got == nil {
		t.Fatal("Format() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len(Format()) = %d, want 0", len(got))
	}

	if got := Format(nil, "Israel", "Haifa"); got == nil || len(got) != 0 {
		t.Errorf("Format(nil) = %v, want empty slice", got)
	}
}

func TestPresentationRecord_JSON(t *testing.T) {
	b, err := json.Marshal(PresentationRecord{Country: "Israel", City: "Haifa", Time: "2025-01-21", MaxTemp: 21.3, MinTemp: 12.1, Humidity: 65.17, UvIndex: 4.2, CloudCover: 42})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"country":"Israel","city":"Haifa","time":"2025-01-21","max_temp":21.3,"min_temp":12.1,"humidity":65.17,"uv_index":4.2,"cloud_cover":42}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrInvalidQuery, KindInvalidQuery},
		{ErrLocationNotFound, KindLocationNotFound},
		{ErrForecastFetch, KindForecastFetch},
		{ErrMalformedResponse, KindMalformedResponse},
		{ErrInsufficientData, KindInsufficientData},
		{errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

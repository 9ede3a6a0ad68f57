package openmeteo

// SearchAPIResponse is the geocoding API payload. Results is absent when
// nothing matched.
type SearchAPIResponse struct {
	Results          []SearchResult `json:"results"`
	GenerationtimeMs float64        `json:"generationtime_ms"`
}

type SearchResult struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Elevation   float64  `json:"elevation"`
	FeatureCode string   `json:"feature_code"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	Admin1      string   `json:"admin1"`
	Timezone    string   `json:"timezone"`
	Population  int      `json:"population"`
}

// ForecastAPIResponse is the forecast API payload for the variables requested
// by ForecastClient. Hourly and Daily are nil when the API omits them.
type ForecastAPIResponse struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	GenerationtimeMs     float64           `json:"generationtime_ms"`
	UtcOffsetSeconds     int               `json:"utc_offset_seconds"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	Elevation            float64           `json:"elevation"`
	HourlyUnits          map[string]string `json:"hourly_units"`
	Hourly               *HourlyData       `json:"hourly"`
	DailyUnits           map[string]string `json:"daily_units"`
	Daily                *DailyData        `json:"daily"`
}

// Series values are pointers because the API sends null where a model has no data.
type HourlyData struct {
	Time               []string   `json:"time"`
	RelativeHumidity2M []*float64 `json:"relative_humidity_2m"`
	CloudCover         []*float64 `json:"cloud_cover"`
}

type DailyData struct {
	Time             []string   `json:"time"`
	Temperature2MMax []*float64 `json:"temperature_2m_max"`
	Temperature2MMin []*float64 `json:"temperature_2m_min"`
	UvIndexMax       []*float64 `json:"uv_index_max"`
}

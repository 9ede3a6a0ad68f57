package weather

// Format tags each day with the resolved place. Order is preserved and an
// empty input yields an empty, non-nil slice.
func Format(days []DayRecord, country, city string) []PresentationRecord {
	records := make([]PresentationRecord, 0, len(days))
	for _, d := range days {
		records = append(records, PresentationRecord{
			Country:    country,
			City:       city,
			Time:       d.Date,
			MaxTemp:    d.MaxTemp,
			MinTemp:    d.MinTemp,
			Humidity:   d.HumidityAvg,
			UvIndex:    d.UvIndex,
			CloudCover: d.CloudCover,
		})
	}
	return records
}

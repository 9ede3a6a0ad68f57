package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	City        string
	Region      string
	Country     string
	CountryCode string
}

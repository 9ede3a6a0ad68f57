package types

import "fmt"

// Coords is a WGS84 point in decimal degrees
type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate reports coordinates outside the WGS84 range
func (c Coords) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", c.Longitude)
	}
	return nil
}

func (c Coords) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

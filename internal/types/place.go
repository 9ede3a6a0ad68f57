package types

// Place is a resolved location: the best geocoding match for a free-text query.
type Place struct {
	Coordinates Coords
	Location    LocationInfo
	Timezone    string
}

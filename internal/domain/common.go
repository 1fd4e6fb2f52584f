package domain

// Coordinate is a selected map point. Both the click surface and the
// geosearch provider produce one of these; last write wins.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultMapCenter is where the operator's map opens before a point is
// selected (downtown Yangon).
var DefaultMapCenter = Coordinate{Lat: 16.8661, Lng: 96.1951}

// ValidCoordinate reports whether lat/lng are inside WGS84 bounds.
func ValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

package model

// Coordinate is one accepted GPS fix on a recorded path. Immutable once
// created; insertion order on a path is chronological order.
type Coordinate struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"`
}

// Fix is a raw reading from the platform location capability, before
// filtering. Accuracy is the reported error radius in meters.
type Fix struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp int64   `json:"timestamp"`
}

// Coordinate converts an accepted fix into a path point. The accuracy
// radius is not retained on the path.
func (f Fix) Coordinate() Coordinate {
	return Coordinate{Lat: f.Lat, Lng: f.Lng, Timestamp: f.Timestamp}
}

// Marker categories.
const (
	MarkerHouse = "house"
	MarkerShop  = "shop"
	MarkerNote  = "note"
)

// Marker is a user-placed point annotation, independent of any path.
type Marker struct {
	ID        string  `json:"id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Note      string  `json:"note"`
	Type      string  `json:"type"`
	Timestamp int64   `json:"timestamp"`
}

// ValidMarkerType reports whether t is one of the known marker categories.
func ValidMarkerType(t string) bool {
	switch t {
	case MarkerHouse, MarkerShop, MarkerNote:
		return true
	}
	return false
}

package models

// Location represents a geographical location with latitude and longitude
// coordinates, used as an optional grounding hint for route insights and in
// telemetry readings.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lon float64 `bson:"lon" json:"lon"`
}

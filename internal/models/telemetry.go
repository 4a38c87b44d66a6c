package models

import "time"

// TelemetryReading is a single in-trip report from a vehicle: odometer,
// fuel level and position at a point in time.
type TelemetryReading struct {
	VehicleID string    `json:"vehicle_id" bson:"vehicle_id"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Location  Location  `json:"location" bson:"location"`
	SpeedKmh  float64   `json:"speed_kmh" bson:"speed_kmh"`
	Km        float64   `json:"km" bson:"km"`
	FuelLevel float64   `json:"fuel_level" bson:"fuel_level"`
}

package models

import "time"

// Checklist is the pre-trip inspection snapshot captured when a trip starts.
// The most recent one becomes the vehicle's last-checklist snapshot.
type Checklist struct {
	ID           string    `json:"id" bson:"id"`
	VehicleID    string    `json:"vehicle_id" bson:"vehicle_id"`
	DriverID     string    `json:"driver_id" bson:"driver_id"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
	Km           float64   `json:"km" bson:"km"`
	FuelLevel    float64   `json:"fuel_level" bson:"fuel_level"`
	OilChecked   bool      `json:"oil_checked" bson:"oil_checked"`
	WaterChecked bool      `json:"water_checked" bson:"water_checked"`
	TiresChecked bool      `json:"tires_checked" bson:"tires_checked"`
	Comments     string    `json:"comments,omitempty" bson:"comments,omitempty"`
}

package models

import "time"

// Fine is a traffic fine charged against a driver and vehicle. Fines are a
// purely additive log with no lifecycle.
type Fine struct {
	ID          string    `json:"id" bson:"id"`
	DriverID    string    `json:"driver_id" bson:"driver_id"`
	VehicleID   string    `json:"vehicle_id" bson:"vehicle_id"`
	Date        time.Time `json:"date" bson:"date"`
	Value       float64   `json:"value" bson:"value"`
	Points      int       `json:"points" bson:"points"`
	Description string    `json:"description" bson:"description"`
}

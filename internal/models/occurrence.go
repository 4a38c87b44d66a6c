package models

import "time"

// OccurrenceSeverity classifies how serious an incident was.
type OccurrenceSeverity string

const (
	SeverityLow    OccurrenceSeverity = "low"
	SeverityMedium OccurrenceSeverity = "medium"
	SeverityHigh   OccurrenceSeverity = "high"
)

// Occurrence is an incident logged against a trip.
type Occurrence struct {
	ID          string             `json:"id" bson:"id"`
	TripID      string             `json:"trip_id" bson:"trip_id"`
	VehicleID   string             `json:"vehicle_id" bson:"vehicle_id"`
	DriverID    string             `json:"driver_id" bson:"driver_id"`
	Type        string             `json:"type" bson:"type"`
	Description string             `json:"description" bson:"description"`
	Severity    OccurrenceSeverity `json:"severity" bson:"severity"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
	Resolved    bool               `json:"resolved" bson:"resolved"`
}

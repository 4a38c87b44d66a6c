package models

import "time"

// Trip represents a journey from origin to destination. A trip lives in the
// active collection between start and end; on completion it moves to the
// completed collection with the end fields filled in.
type Trip struct {
	ID               string     `json:"id" bson:"id"`
	DriverID         string     `json:"driver_id" bson:"driver_id"`
	VehicleID        string     `json:"vehicle_id" bson:"vehicle_id"`
	Origin           string     `json:"origin" bson:"origin"`
	Destination      string     `json:"destination" bson:"destination"`
	Waypoints        []string   `json:"waypoints,omitempty" bson:"waypoints,omitempty"`
	City             string     `json:"city,omitempty" bson:"city,omitempty"`
	State            string     `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode          string     `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	PlannedDeparture *time.Time `json:"planned_departure,omitempty" bson:"planned_departure,omitempty"`
	PlannedArrival   *time.Time `json:"planned_arrival,omitempty" bson:"planned_arrival,omitempty"`
	StartTime        time.Time  `json:"start_time" bson:"start_time"`
	EndTime          *time.Time `json:"end_time,omitempty" bson:"end_time,omitempty"`
	StartKm          float64    `json:"start_km" bson:"start_km"`
	Distance         float64    `json:"distance,omitempty" bson:"distance,omitempty"` // computed on completion
	Observations     string     `json:"observations,omitempty" bson:"observations,omitempty"`
	FuelExpense      float64    `json:"fuel_expense,omitempty" bson:"fuel_expense,omitempty"`
	OtherExpense     float64    `json:"other_expense,omitempty" bson:"other_expense,omitempty"`
	ExpenseNotes     string     `json:"expense_notes,omitempty" bson:"expense_notes,omitempty"`
}

// ScheduledTrip is a future-dated trip template. It carries no start time or
// start odometer; those are captured when the assigned driver begins the
// journey and the schedule entry is promoted to an active Trip.
type ScheduledTrip struct {
	ID               string     `json:"id" bson:"id"`
	DriverID         string     `json:"driver_id" bson:"driver_id"`
	VehicleID        string     `json:"vehicle_id" bson:"vehicle_id"`
	Origin           string     `json:"origin" bson:"origin"`
	Destination      string     `json:"destination" bson:"destination"`
	Waypoints        []string   `json:"waypoints,omitempty" bson:"waypoints,omitempty"`
	City             string     `json:"city,omitempty" bson:"city,omitempty"`
	State            string     `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode          string     `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	ScheduledDate    time.Time  `json:"scheduled_date" bson:"scheduled_date"`
	PlannedDeparture *time.Time `json:"planned_departure,omitempty" bson:"planned_departure,omitempty"`
	PlannedArrival   *time.Time `json:"planned_arrival,omitempty" bson:"planned_arrival,omitempty"`
	Notes            string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

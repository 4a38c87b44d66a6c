package models

import "time"

// MaintenanceRecord represents a shop visit for a vehicle. A record with no
// return date is open, meaning the vehicle is still in the shop.
type MaintenanceRecord struct {
	ID          string     `json:"id" bson:"id"`
	VehicleID   string     `json:"vehicle_id" bson:"vehicle_id"`
	Date        time.Time  `json:"date" bson:"date"`
	ReturnDate  *time.Time `json:"return_date,omitempty" bson:"return_date,omitempty"`
	ServiceType string     `json:"service_type" bson:"service_type"`
	Cost        float64    `json:"cost" bson:"cost"`
	Km          float64    `json:"km" bson:"km"` // odometer at shop departure
	Notes       string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Open reports whether the vehicle is still in the shop for this record.
func (m *MaintenanceRecord) Open() bool {
	return m.ReturnDate == nil
}

package models

import "time"

// NotificationType enumerates the alerts the system raises.
type NotificationType string

const (
	NotifyMaintenanceKm   NotificationType = "maintenance_km"
	NotifyMaintenanceDate NotificationType = "maintenance_date"
	NotifyLowFuel         NotificationType = "low_fuel"
	NotifyNewFine         NotificationType = "new_fine"
	NotifyOccurrence      NotificationType = "occurrence"
	NotifySchedule        NotificationType = "schedule"
)

// AppNotification is an in-memory alert shown to the operator. Notifications
// are never persisted and do not survive a restart.
type AppNotification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	VehicleID string           `json:"vehicle_id"`
	Timestamp time.Time        `json:"timestamp"`
	IsRead    bool             `json:"is_read"`
}

package models

// VehicleStatus represents the lifecycle state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "AVAILABLE"
	VehicleInUse       VehicleStatus = "IN_USE"
	VehicleMaintenance VehicleStatus = "MAINTENANCE"
)

// FuelType enumerates the fuel systems found in the fleet.
type FuelType string

const (
	FuelDiesel   FuelType = "Diesel"
	FuelGasoline FuelType = "Gasolina"
	FuelFlex     FuelType = "Flex"
	FuelElectric FuelType = "Elétrico"
	FuelCNG      FuelType = "GNV"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID            string        `json:"id" bson:"id"`
	Plate         string        `json:"plate" bson:"plate"`
	Model         string        `json:"model" bson:"model"`
	Brand         string        `json:"brand" bson:"brand"`
	Year          int           `json:"year" bson:"year"`
	CurrentKm     float64       `json:"current_km" bson:"current_km"`
	FuelLevel     float64       `json:"fuel_level" bson:"fuel_level"` // percent, 0-100
	FuelType      FuelType      `json:"fuel_type" bson:"fuel_type"`
	Status        VehicleStatus `json:"status" bson:"status"`
	LastChecklist *Checklist    `json:"last_checklist,omitempty" bson:"last_checklist,omitempty"`
}

package store

import (
	"time"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

// First-run defaults, applied per collection when the persister has no entry
// for it yet.

func seedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: "1", Plate: "ABC-1234", Model: "Sprinter", Brand: "Mercedes", Year: 2022, CurrentKm: 45000, FuelLevel: 75, FuelType: models.FuelDiesel, Status: models.VehicleAvailable},
		{ID: "2", Plate: "XYZ-5678", Model: "Hilux", Brand: "Toyota", Year: 2023, CurrentKm: 12000, FuelLevel: 100, FuelType: models.FuelDiesel, Status: models.VehicleAvailable},
		{ID: "3", Plate: "DEF-9012", Model: "Daily", Brand: "Iveco", Year: 2021, CurrentKm: 89000, FuelLevel: 40, FuelType: models.FuelDiesel, Status: models.VehicleMaintenance},
	}
}

func seedDrivers() []models.Driver {
	return []models.Driver{
		{ID: "d1", Name: "João Silva", License: "12345678", Username: "joao", Password: "123", PasswordChanged: false},
		{ID: "d2", Name: "Maria Santos", License: "87654321", Username: "maria", Password: "123", PasswordChanged: false},
		{ID: "admin", Name: "Gestor de Frota", License: "0000", Username: "admin", Password: "admin", PasswordChanged: true},
	}
}

func seedMaintenance() []models.MaintenanceRecord {
	return []models.MaintenanceRecord{
		{
			ID:          "m-initial-3",
			VehicleID:   "3",
			Date:        time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			ServiceType: "Revisão de Motor",
			Cost:        1200,
			Km:          88900,
			Notes:       "Veículo enviado para oficina para revisão periódica.",
		},
	}
}

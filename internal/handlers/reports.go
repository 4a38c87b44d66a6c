package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// VehicleReport is the per-vehicle rollup inside a fleet summary. Rollups
// keyed by a deleted vehicle id still appear, with the plate left blank.
type VehicleReport struct {
	VehicleID       string  `json:"vehicle_id"`
	Plate           string  `json:"plate,omitempty"`
	Trips           int     `json:"trips"`
	DistanceKm      float64 `json:"distance_km"`
	FuelExpense     float64 `json:"fuel_expense"`
	OtherExpense    float64 `json:"other_expense"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	FinesValue      float64 `json:"fines_value"`
}

// FleetSummary aggregates completed trips, expenses, maintenance and fines
// for the reports page.
type FleetSummary struct {
	Vehicles        int             `json:"vehicles"`
	Drivers         int             `json:"drivers"`
	ActiveTrips     int             `json:"active_trips"`
	CompletedTrips  int             `json:"completed_trips"`
	TotalDistanceKm float64         `json:"total_distance_km"`
	FuelExpense     float64         `json:"fuel_expense"`
	OtherExpense    float64         `json:"other_expense"`
	MaintenanceCost float64         `json:"maintenance_cost"`
	FinesValue      float64         `json:"fines_value"`
	FinesPoints     int             `json:"fines_points"`
	PerVehicle      []VehicleReport `json:"per_vehicle"`
}

// ReportHandler serves fleet aggregates.
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler creates a new report handler.
func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// BuildSummary computes the fleet summary from the current store state.
func (h *ReportHandler) BuildSummary() FleetSummary {
	vehicles := h.store.Vehicles()
	completed := h.store.CompletedTrips()

	perVehicle := make(map[string]*VehicleReport)
	rollup := func(vehicleID string) *VehicleReport {
		if r, ok := perVehicle[vehicleID]; ok {
			return r
		}
		r := &VehicleReport{VehicleID: vehicleID}
		perVehicle[vehicleID] = r
		return r
	}
	for _, v := range vehicles {
		rollup(v.ID).Plate = v.Plate
	}

	summary := FleetSummary{
		Vehicles:       len(vehicles),
		Drivers:        len(h.store.Drivers()),
		ActiveTrips:    len(h.store.ActiveTrips()),
		CompletedTrips: len(completed),
	}

	for _, t := range completed {
		summary.TotalDistanceKm += t.Distance
		summary.FuelExpense += t.FuelExpense
		summary.OtherExpense += t.OtherExpense
		r := rollup(t.VehicleID)
		r.Trips++
		r.DistanceKm += t.Distance
		r.FuelExpense += t.FuelExpense
		r.OtherExpense += t.OtherExpense
	}
	for _, m := range h.store.MaintenanceRecords() {
		summary.MaintenanceCost += m.Cost
		rollup(m.VehicleID).MaintenanceCost += m.Cost
	}
	for _, f := range h.store.Fines() {
		summary.FinesValue += f.Value
		summary.FinesPoints += f.Points
		rollup(f.VehicleID).FinesValue += f.Value
	}

	// stable order: fleet vehicles first, then dangling ids
	for _, v := range vehicles {
		summary.PerVehicle = append(summary.PerVehicle, *perVehicle[v.ID])
		delete(perVehicle, v.ID)
	}
	for _, r := range perVehicle {
		summary.PerVehicle = append(summary.PerVehicle, *r)
	}

	return summary
}

// Summary handles GET on /api/reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.BuildSummary())
}

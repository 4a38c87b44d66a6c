package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// MaintenanceHandler serves the maintenance log.
type MaintenanceHandler struct {
	store *store.Store
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(s *store.Store) *MaintenanceHandler {
	return &MaintenanceHandler{store: s}
}

// Collection handles GET (list) and POST (open a record) on
// /api/maintenance. Opening a record sends the vehicle to MAINTENANCE.
func (h *MaintenanceHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.store.MaintenanceRecords())
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var rec models.MaintenanceRecord
		if err := json.Unmarshal(body, &rec); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if rec.VehicleID == "" || rec.ServiceType == "" {
			http.Error(w, "Vehicle and service type are required", http.StatusBadRequest)
			return
		}
		if rec.Date.IsZero() {
			rec.Date = time.Now()
		}
		rec.ReturnDate = nil // records always open as in-shop
		if err := h.store.AddMaintenanceRecord(rec); err != nil {
			http.Error(w, "Failed to save maintenance record", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Maintenance opened"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Resolve closes a maintenance record and releases the vehicle. record_id
// is optional; without it the vehicle's open record is closed.
func (h *MaintenanceHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		VehicleID  string     `json:"vehicle_id"`
		RecordID   string     `json:"record_id,omitempty"`
		CurrentKm  float64    `json:"current_km"`
		ReturnDate *time.Time `json:"return_date,omitempty"`
		FinalCost  *float64   `json:"final_cost,omitempty"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.VehicleID == "" {
		http.Error(w, "Vehicle id is required", http.StatusBadRequest)
		return
	}

	returnDate := time.Now()
	if req.ReturnDate != nil {
		returnDate = *req.ReturnDate
	}

	if err := h.store.ResolveMaintenance(req.VehicleID, req.RecordID, req.CurrentKm, returnDate, req.FinalCost); err != nil {
		http.Error(w, "Failed to resolve maintenance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Maintenance resolved"})
}

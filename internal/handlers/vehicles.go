package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// VehicleHandler serves the vehicle registry.
type VehicleHandler struct {
	store *store.Store
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(s *store.Store) *VehicleHandler {
	return &VehicleHandler{store: s}
}

// Collection handles GET (list) and POST (add) on /api/vehicles.
func (h *VehicleHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.store.Vehicles())
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var v models.Vehicle
		if err := json.Unmarshal(body, &v); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if v.Plate == "" || v.Model == "" {
			http.Error(w, "Plate and model are required", http.StatusBadRequest)
			return
		}
		if err := h.store.AddVehicle(v); err != nil {
			http.Error(w, "Failed to save vehicle", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Vehicle created"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles GET, PUT and DELETE on /api/vehicles/{id}.
func (h *VehicleHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/vehicles/")
	if id == "" {
		http.Error(w, "Vehicle id is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		v, ok := h.store.Vehicle(id)
		if !ok {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var v models.Vehicle
		if err := json.Unmarshal(body, &v); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.store.UpdateVehicle(id, v); err != nil {
			http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Vehicle updated"})
	case http.MethodDelete:
		if err := h.store.DeleteVehicle(id); err != nil {
			http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Vehicle deleted"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

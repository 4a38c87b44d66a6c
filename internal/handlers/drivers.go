package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// DriverHandler serves the driver registry.
type DriverHandler struct {
	store *store.Store
}

// NewDriverHandler creates a new driver handler.
func NewDriverHandler(s *store.Store) *DriverHandler {
	return &DriverHandler{store: s}
}

// Collection handles GET (list) and POST (add) on /api/drivers.
// Listed drivers have their passwords blanked.
func (h *DriverHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		drivers := h.store.Drivers()
		for i := range drivers {
			drivers[i].Password = ""
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(drivers)
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var d models.Driver
		if err := json.Unmarshal(body, &d); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if d.Name == "" || d.Username == "" {
			http.Error(w, "Name and username are required", http.StatusBadRequest)
			return
		}
		if err := h.store.AddDriver(d); err != nil {
			http.Error(w, "Failed to save driver", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Driver created"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles PUT and DELETE on /api/drivers/{id}.
func (h *DriverHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/drivers/")
	if id == "" {
		http.Error(w, "Driver id is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var d models.Driver
		if err := json.Unmarshal(body, &d); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.store.UpdateDriver(id, d); err != nil {
			http.Error(w, "Failed to update driver", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Driver updated"})
	case http.MethodDelete:
		if err := h.store.DeleteDriver(id); err != nil {
			http.Error(w, "Failed to delete driver", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Driver deleted"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

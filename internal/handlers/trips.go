package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// TripHandler serves the trip lifecycle: active and completed trips,
// start/end/cancel, in-flight edits and the schedule.
type TripHandler struct {
	store *store.Store
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(s *store.Store) *TripHandler {
	return &TripHandler{store: s}
}

// Active lists active trips.
func (h *TripHandler) Active(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.ActiveTrips())
}

// Completed lists completed trips, most recent first.
func (h *TripHandler) Completed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.CompletedTrips())
}

// Checklists lists all recorded departure checklists.
func (h *TripHandler) Checklists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.Checklists())
}

// Start begins a trip from a checklist. When scheduled_trip_id is set the
// schedule entry is consumed in the same operation. The caller is expected
// to start trips only on AVAILABLE vehicles; the handler rejects the
// obvious conflict but the store does not re-check.
func (h *TripHandler) Start(w http.ResponseWriter, r *http.Request) {
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
		Trip            models.Trip      `json:"trip"`
		Checklist       models.Checklist `json:"checklist"`
		ScheduledTripID string           `json:"scheduled_trip_id,omitempty"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Trip.VehicleID == "" || req.Trip.DriverID == "" {
		http.Error(w, "Vehicle and driver are required", http.StatusBadRequest)
		return
	}

	if v, ok := h.store.Vehicle(req.Trip.VehicleID); ok && v.Status != models.VehicleAvailable {
		http.Error(w, "Vehicle is not available", http.StatusConflict)
		return
	}

	if req.Trip.StartTime.IsZero() {
		req.Trip.StartTime = time.Now()
	}
	if req.Checklist.Timestamp.IsZero() {
		req.Checklist.Timestamp = req.Trip.StartTime
	}
	req.Trip.StartKm = req.Checklist.Km
	req.Checklist.VehicleID = req.Trip.VehicleID
	req.Checklist.DriverID = req.Trip.DriverID

	if req.ScheduledTripID != "" {
		err = h.store.StartScheduledTrip(req.ScheduledTripID, req.Trip, req.Checklist)
	} else {
		err = h.store.StartTrip(req.Trip, req.Checklist)
	}
	if err != nil {
		http.Error(w, "Failed to start trip", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Trip started"})
}

// End completes an active trip. Unknown trip ids are accepted and ignored,
// matching the store's silent no-op contract.
func (h *TripHandler) End(w http.ResponseWriter, r *http.Request) {
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
		TripID    string          `json:"trip_id"`
		CurrentKm float64         `json:"current_km"`
		EndTime   *time.Time      `json:"end_time,omitempty"`
		Expenses  *store.Expenses `json:"expenses,omitempty"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.TripID == "" {
		http.Error(w, "Trip id is required", http.StatusBadRequest)
		return
	}

	endTime := time.Now()
	if req.EndTime != nil {
		endTime = *req.EndTime
	}

	if err := h.store.EndTrip(req.TripID, req.CurrentKm, endTime, req.Expenses); err != nil {
		http.Error(w, "Failed to end trip", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Trip ended"})
}

// Cancel discards an active trip without a completed record.
func (h *TripHandler) Cancel(w http.ResponseWriter, r *http.Request) {
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
		TripID string `json:"trip_id"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.TripID == "" {
		http.Error(w, "Trip id is required", http.StatusBadRequest)
		return
	}

	if err := h.store.CancelTrip(req.TripID); err != nil {
		http.Error(w, "Failed to cancel trip", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Trip cancelled"})
}

// Update merges in-flight route edits into an active trip.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
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
		TripID  string           `json:"trip_id"`
		Updates store.TripUpdate `json:"updates"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.TripID == "" {
		http.Error(w, "Trip id is required", http.StatusBadRequest)
		return
	}

	if err := h.store.UpdateTrip(req.TripID, req.Updates); err != nil {
		http.Error(w, "Failed to update trip", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Trip updated"})
}

// Scheduled handles GET (list) and POST (add) on /api/trips/scheduled.
func (h *TripHandler) Scheduled(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.store.ScheduledTrips())
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var st models.ScheduledTrip
		if err := json.Unmarshal(body, &st); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if st.VehicleID == "" || st.DriverID == "" || st.ScheduledDate.IsZero() {
			http.Error(w, "Vehicle, driver and scheduled date are required", http.StatusBadRequest)
			return
		}
		if err := h.store.AddScheduledTrip(st); err != nil {
			http.Error(w, "Failed to save scheduled trip", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Trip scheduled"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ScheduledItem handles PUT and DELETE on /api/trips/scheduled/{id}.
func (h *TripHandler) ScheduledItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/trips/scheduled/")
	if id == "" {
		http.Error(w, "Scheduled trip id is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var st models.ScheduledTrip
		if err := json.Unmarshal(body, &st); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.store.UpdateScheduledTrip(id, st); err != nil {
			http.Error(w, "Failed to update scheduled trip", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Scheduled trip updated"})
	case http.MethodDelete:
		if err := h.store.DeleteScheduledTrip(id); err != nil {
			http.Error(w, "Failed to delete scheduled trip", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Scheduled trip deleted"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

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

// FineHandler serves the fine log.
type FineHandler struct {
	store *store.Store
}

// NewFineHandler creates a new fine handler.
func NewFineHandler(s *store.Store) *FineHandler {
	return &FineHandler{store: s}
}

// Collection handles GET (list) and POST (add) on /api/fines.
func (h *FineHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.store.Fines())
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var f models.Fine
		if err := json.Unmarshal(body, &f); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if f.DriverID == "" || f.VehicleID == "" {
			http.Error(w, "Driver and vehicle are required", http.StatusBadRequest)
			return
		}
		if f.Date.IsZero() {
			f.Date = time.Now()
		}
		if err := h.store.AddFine(f); err != nil {
			http.Error(w, "Failed to save fine", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Fine registered"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles DELETE on /api/fines/{id}.
func (h *FineHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/fines/")
	if id == "" {
		http.Error(w, "Fine id is required", http.StatusBadRequest)
		return
	}

	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.DeleteFine(id); err != nil {
		http.Error(w, "Failed to delete fine", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Fine deleted"})
}

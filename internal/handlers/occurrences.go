package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// OccurrenceHandler serves the incident log and the in-memory
// notification list.
type OccurrenceHandler struct {
	store *store.Store
}

// NewOccurrenceHandler creates a new occurrence handler.
func NewOccurrenceHandler(s *store.Store) *OccurrenceHandler {
	return &OccurrenceHandler{store: s}
}

// Collection handles GET (list) and POST (add) on /api/occurrences.
func (h *OccurrenceHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.store.Occurrences())
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var o models.Occurrence
		if err := json.Unmarshal(body, &o); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if o.TripID == "" || o.Description == "" {
			http.Error(w, "Trip and description are required", http.StatusBadRequest)
			return
		}
		if o.Severity == "" {
			o.Severity = models.SeverityLow
		}
		if err := h.store.AddOccurrence(o); err != nil {
			http.Error(w, "Failed to save occurrence", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Occurrence registered"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Notifications handles GET on /api/notifications.
func (h *OccurrenceHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.Notifications())
}

// MarkNotificationRead handles POST on /api/notifications/read.
func (h *OccurrenceHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
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
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "Notification id is required", http.StatusBadRequest)
		return
	}

	h.store.MarkNotificationRead(req.ID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Notification read"})
}

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/insight"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/maps"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/rodizio"
)

// InsightHandler serves the text-insight endpoints plus the navigation
// link builder and the circulation-restriction check. The insight client
// never fails: on error it answers with its fallback text.
type InsightHandler struct {
	client  insight.Client
	reports *ReportHandler
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(client insight.Client, reports *ReportHandler) *InsightHandler {
	return &InsightHandler{client: client, reports: reports}
}

// Route handles POST on /api/insights/route.
func (h *InsightHandler) Route(w http.ResponseWriter, r *http.Request) {
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
		Origin      string           `json:"origin"`
		Destination string           `json:"destination"`
		Location    *models.Location `json:"location,omitempty"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Origin == "" || req.Destination == "" {
		http.Error(w, "Origin and destination are required", http.StatusBadRequest)
		return
	}

	result := h.client.RouteInsights(r.Context(), req.Origin, req.Destination, req.Location)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Optimize handles POST on /api/insights/optimize.
func (h *InsightHandler) Optimize(w http.ResponseWriter, r *http.Request) {
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
		Origin      string   `json:"origin"`
		Destination string   `json:"destination"`
		Waypoints   []string `json:"waypoints,omitempty"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Origin == "" || req.Destination == "" {
		http.Error(w, "Origin and destination are required", http.StatusBadRequest)
		return
	}

	result := h.client.OptimizeRoute(r.Context(), req.Origin, req.Destination, req.Waypoints)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Fleet handles GET on /api/insights/fleet: the current fleet summary is
// handed to the insight client for a management analysis.
func (h *InsightHandler) Fleet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	text := h.client.FleetAnalysis(r.Context(), h.reports.BuildSummary())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"text": text})
}

// NavigationLink handles GET on /api/navigation/link. Waypoints repeat as
// ?waypoint= query parameters.
func (h *InsightHandler) NavigationLink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	origin := q.Get("origin")
	destination := q.Get("destination")
	if origin == "" || destination == "" {
		http.Error(w, "Origin and destination are required", http.StatusBadRequest)
		return
	}

	link := maps.DirectionsLink(origin, destination, q.Get("city"), q["waypoint"])
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": link})
}

// Rodizio handles GET on /api/rodizio: ?plate= is required, ?date=
// (RFC 3339 or 2006-01-02) defaults to today.
func (h *InsightHandler) Rodizio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	plate := r.URL.Query().Get("plate")
	if plate == "" {
		http.Error(w, "Plate is required", http.StatusBadRequest)
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", raw)
		}
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"plate":      plate,
		"restricted": rodizio.Restricted(plate, date),
		"day_label":  rodizio.DayLabel(plate),
	})
}

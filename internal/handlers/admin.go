package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/auth"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// AdminHandler serves destructive administrative operations.
type AdminHandler struct {
	authService *auth.Service
	store       *store.Store
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(authService *auth.Service, s *store.Store) *AdminHandler {
	return &AdminHandler{authService: authService, store: s}
}

// Reset handles POST on /api/admin/reset. It wipes every collection and
// reseeds the initial fleet. The caller must send the admin password and
// an explicit confirm flag; either missing aborts the reset.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
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
		AdminPassword string `json:"admin_password"`
		Confirm       bool   `json:"confirm"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if !h.authService.CheckAdminPassword(req.AdminPassword) {
		log.Warn("Database reset rejected: bad admin password")
		http.Error(w, "Invalid admin password", http.StatusUnauthorized)
		return
	}
	if !req.Confirm {
		http.Error(w, "Reset not confirmed", http.StatusBadRequest)
		return
	}

	if err := h.store.ResetDatabase(); err != nil {
		log.WithError(err).Error("Database reset failed")
		http.Error(w, "Failed to reset database", http.StatusInternalServerError)
		return
	}

	log.Warn("Database reset to seed data")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Database reset to initial state"})
}

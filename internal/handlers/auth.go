package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/auth"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/middleware"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// AuthHandler handles login, logout and the password-change flow.
type AuthHandler struct {
	authService *auth.Service
	store       *store.Store
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService *auth.Service, s *store.Store) *AuthHandler {
	return &AuthHandler{authService: authService, store: s}
}

// Login authenticates a driver. The response carries a token and the
// must_change_password flag; clients must complete the password-change flow
// before anything else when it is set.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var loginReq models.LoginRequest
	if err := json.Unmarshal(body, &loginReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	driver, ok := h.store.Login(loginReq.Username, loginReq.Password)
	if !ok {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.authService.GenerateToken(&driver)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	driver.Password = ""
	response := models.LoginResponse{
		Token:              token,
		MustChangePassword: !driver.PasswordChanged,
		Driver:             driver,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// Logout clears the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.store.Logout()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

// Profile returns the driver behind the current token.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	driver, ok := h.store.Driver(claims.DriverID)
	if !ok {
		http.Error(w, "Driver not found", http.StatusNotFound)
		return
	}

	driver.Password = ""
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(driver)
}

// ChangePassword overwrites the current driver's password and clears the
// forced-reset flag. A fresh token is returned so the client keeps working
// without logging in again.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var passwordReq struct {
		NewPassword string `json:"new_password"`
	}
	if err := json.Unmarshal(body, &passwordReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if passwordReq.NewPassword == "" {
		http.Error(w, "New password is required", http.StatusBadRequest)
		return
	}

	if err := h.store.ChangePassword(claims.DriverID, passwordReq.NewPassword); err != nil {
		http.Error(w, "Failed to change password", http.StatusInternalServerError)
		return
	}

	driver, ok := h.store.Driver(claims.DriverID)
	if !ok {
		http.Error(w, "Driver not found", http.StatusNotFound)
		return
	}

	token, err := h.authService.GenerateToken(&driver)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Password changed successfully",
		"token":   token,
	})
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/auth"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *auth.Service) {
	service, err := auth.NewService()
	assert.NoError(t, err)
	return NewAuthHandler(service, newTestStore(t)), service
}

func TestLogin_MissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "joao"})
	w := httptest.NewRecorder()
	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "joao", "password": "wrong",
	})
	w := httptest.NewRecorder()
	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Success(t *testing.T) {
	h, service := newAuthHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "joao", "password": "123",
	})
	w := httptest.NewRecorder()
	h.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.MustChangePassword)
	assert.Equal(t, "joao", resp.Driver.Username)
	assert.Empty(t, resp.Driver.Password)

	claims, err := service.ValidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, "d1", claims.DriverID)
	assert.False(t, claims.PasswordChanged)
}

func TestLogin_AdminHasNoForcedReset(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin", "password": "admin",
	})
	w := httptest.NewRecorder()
	h.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.LoginResponse
	decodeBody(t, w, &resp)
	assert.False(t, resp.MustChangePassword)
}

func TestChangePassword(t *testing.T) {
	h, service := newAuthHandler(t)

	claims := &models.Claims{DriverID: "d1", Username: "joao", PasswordChanged: false}
	req := withClaims(jsonRequest(t, http.MethodPost, "/api/auth/change-password", map[string]string{
		"new_password": "nova-senha",
	}), claims)
	w := httptest.NewRecorder()
	h.ChangePassword(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp["token"])

	// the fresh token reflects the cleared flag
	newClaims, err := service.ValidateToken(resp["token"])
	assert.NoError(t, err)
	assert.True(t, newClaims.PasswordChanged)

	// and the new password works on login
	d, ok := h.store.Login("joao", "nova-senha")
	assert.True(t, ok)
	assert.True(t, d.PasswordChanged)
}

func TestChangePassword_RequiresPassword(t *testing.T) {
	h, _ := newAuthHandler(t)

	claims := &models.Claims{DriverID: "d1", Username: "joao"}
	req := withClaims(jsonRequest(t, http.MethodPost, "/api/auth/change-password", map[string]string{}), claims)
	w := httptest.NewRecorder()
	h.ChangePassword(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfile(t *testing.T) {
	h, _ := newAuthHandler(t)

	claims := &models.Claims{DriverID: "d2", Username: "maria"}
	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil), claims)
	w := httptest.NewRecorder()
	h.Profile(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var driver models.Driver
	decodeBody(t, w, &driver)
	assert.Equal(t, "Maria Santos", driver.Name)
	assert.Empty(t, driver.Password)
}

func TestProfile_NoContext(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	w := httptest.NewRecorder()
	h.Profile(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

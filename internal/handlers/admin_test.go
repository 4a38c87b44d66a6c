package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/auth"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *store.Store) {
	service, err := auth.NewService()
	assert.NoError(t, err)
	s := newTestStore(t)
	return NewAdminHandler(service, s), s
}

func seedSomeHistory(t *testing.T, s *store.Store) {
	assert.NoError(t, s.StartTrip(
		models.Trip{ID: "t1", VehicleID: "1", DriverID: "d1", StartTime: time.Now(), StartKm: 45000},
		models.Checklist{VehicleID: "1", DriverID: "d1", Km: 45000},
	))
	assert.NoError(t, s.EndTrip("t1", 45100, time.Now(), nil))
}

func TestAdminReset(t *testing.T) {
	h, s := newAdminHandler(t)
	seedSomeHistory(t, s)
	assert.Len(t, s.CompletedTrips(), 1)

	req := jsonRequest(t, http.MethodPost, "/api/admin/reset", map[string]interface{}{
		"admin_password": "admin",
		"confirm":        true,
	})
	w := httptest.NewRecorder()
	h.Reset(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.CompletedTrips())
	assert.Len(t, s.Vehicles(), 3)
}

func TestAdminReset_BadPassword(t *testing.T) {
	h, s := newAdminHandler(t)
	seedSomeHistory(t, s)

	req := jsonRequest(t, http.MethodPost, "/api/admin/reset", map[string]interface{}{
		"admin_password": "wrong",
		"confirm":        true,
	})
	w := httptest.NewRecorder()
	h.Reset(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Len(t, s.CompletedTrips(), 1)
}

func TestAdminReset_RequiresConfirm(t *testing.T) {
	h, s := newAdminHandler(t)
	seedSomeHistory(t, s)

	req := jsonRequest(t, http.MethodPost, "/api/admin/reset", map[string]interface{}{
		"admin_password": "admin",
	})
	w := httptest.NewRecorder()
	h.Reset(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, s.CompletedTrips(), 1)
}
